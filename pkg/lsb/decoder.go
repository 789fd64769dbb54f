package lsb

import "fmt"

// Decoder recovers a message from a grid.
type Decoder struct {
	grid    Grid
	lenient bool
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithLenient makes Decode trust the length prefix blindly. A grid that
// was never encoded then yields arbitrary bytes instead of
// ErrLengthExceedsCapacity.
func WithLenient() DecoderOption {
	return func(d *Decoder) {
		d.lenient = true
	}
}

// NewDecoder checks that g is large enough to hold at least the length
// prefix.
func NewDecoder(g Grid, opts ...DecoderOption) (*Decoder, error) {
	if err := CheckCapacity(0, g.Width(), g.Height()); err != nil {
		return nil, err
	}
	d := &Decoder{grid: g}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Decode reads the length prefix and then that many bytes.
//
// There is no checksum: a grid that was not encoded decodes to garbage.
// Unless the decoder is lenient, a length prefix that claims more data
// than the grid can carry fails with ErrLengthExceedsCapacity before any
// data bit is read.
func (d *Decoder) Decode() ([]byte, Stats, error) {
	f := newFrame(d.grid)

	var n int
	for i := 0; i < LengthBits; i++ {
		n = n<<1 | int(f.get())
	}

	if !d.lenient {
		if err := CheckCapacity(n, d.grid.Width(), d.grid.Height()); err != nil {
			return nil, f.stats(n), fmt.Errorf("%w: prefix claims %d bytes", ErrLengthExceedsCapacity, n)
		}
	}

	f.phase = PhaseData
	msg := make([]byte, n)
	for i := range msg {
		var b byte
		for j := 0; j < BitsPerByte; j++ {
			b = b<<1 | f.get()
		}
		msg[i] = b
	}

	f.phase = PhaseDone
	return msg, f.stats(n), nil
}
