package lsb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name    string
		msgLen  int
		width   int
		height  int
		wantErr error
	}{
		{name: "empty message in two pixels", msgLen: 0, width: 2, height: 1},
		{name: "empty message in one pixel", msgLen: 0, width: 1, height: 1, wantErr: ErrCapacityExceeded},
		{name: "exact fit", msgLen: 10, width: 3, height: 4},
		{name: "one byte over", msgLen: 11, width: 3, height: 4, wantErr: ErrCapacityExceeded},
		{name: "small message in 4x4", msgLen: 2, width: 4, height: 4},
		{name: "zero width", msgLen: 0, width: 0, height: 10, wantErr: ErrCapacityExceeded},
		{name: "max length", msgLen: MaxMessageLength, width: 256, height: 257},
		{name: "length overflow", msgLen: MaxMessageLength + 1, width: 256, height: 257, wantErr: ErrLengthOverflow},
		{name: "length overflow in tiny image", msgLen: MaxMessageLength + 1, width: 1, height: 1, wantErr: ErrLengthOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCapacity(tt.msgLen, tt.width, tt.height)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestCheckCapacityIsIdempotent(t *testing.T) {
	for _, n := range []int{0, 10, 11, MaxMessageLength + 1} {
		first := CheckCapacity(n, 3, 4)
		second := CheckCapacity(n, 3, 4)
		assert.Equal(t, first == nil, second == nil, "msgLen %d", n)
		if first != nil {
			assert.Equal(t, first.Error(), second.Error())
		}
	}
}

func TestMaxPayload(t *testing.T) {
	assert.Equal(t, 0, MaxPayload(1, 1))
	assert.Equal(t, 0, MaxPayload(2, 1))
	assert.Equal(t, 10, MaxPayload(3, 4))
	assert.Equal(t, 14, MaxPayload(4, 4))
	assert.Equal(t, MaxMessageLength, MaxPayload(1024, 1024))
	assert.Equal(t, 0, MaxPayload(-1, 5))
}
