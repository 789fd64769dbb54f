package easylsb

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/easylsb/pkg/bitmap"
	"github.com/bft-labs/easylsb/pkg/log"
)

func writeCover(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := bitmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetPixel(y, x, bitmap.Pixel{R: uint8(x * 9), G: uint8(y * 5), B: uint8(x ^ y)})
		}
	}
	path := filepath.Join(dir, name)
	require.NoError(t, bitmap.Save(path, img))
	return path
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New(Config{Format: "gif"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEncodeDecodeFile(t *testing.T) {
	dir := t.TempDir()
	in := writeCover(t, dir, "cover.bmp", 16, 16)

	var buf bytes.Buffer
	logger := log.NewZerologAdapterWithLogger(zerolog.New(&buf))
	e, err := New(DefaultConfig(), WithLogger(logger))
	require.NoError(t, err)

	for _, out := range []string{"out.bmp", "out.qoi"} {
		t.Run(out, func(t *testing.T) {
			path := filepath.Join(dir, out)
			st, err := e.EncodeFile([]byte("attack at dawn"), in, path)
			require.NoError(t, err)
			assert.Equal(t, 14, st.Length)

			msg, err := e.DecodeFile(path)
			require.NoError(t, err)
			assert.Equal(t, "attack at dawn", string(msg))
		})
	}
	assert.Contains(t, buf.String(), "encoded message")
	assert.Contains(t, buf.String(), "decoded message")

	// The cover itself is not modified.
	_, err = e.DecodeFile(in)
	assert.ErrorIs(t, err, ErrLengthExceedsCapacity)
}

func TestEncodeFile_FormatOverride(t *testing.T) {
	dir := t.TempDir()
	in := writeCover(t, dir, "cover.bmp", 8, 8)
	out := filepath.Join(dir, "out.img")

	e, err := New(Config{Format: "qoi"})
	require.NoError(t, err)
	_, err = e.EncodeFile([]byte("x"), in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("qoif")))
}

func TestEncodeFile_OutputExists(t *testing.T) {
	dir := t.TempDir()
	in := writeCover(t, dir, "cover.bmp", 8, 8)
	out := filepath.Join(dir, "out.bmp")
	require.NoError(t, os.WriteFile(out, []byte("keep"), 0o644))

	e, err := New(DefaultConfig())
	require.NoError(t, err)
	_, err = e.EncodeFile([]byte("hi"), in, out)
	assert.ErrorIs(t, err, ErrOutputExists)

	data, _ := os.ReadFile(out)
	assert.Equal(t, "keep", string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary file may be left beside the output")

	e, err = New(Config{Force: true})
	require.NoError(t, err)
	_, err = e.EncodeFile([]byte("hi"), in, out)
	require.NoError(t, err)
	msg, err := e.DecodeFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(msg))
}

func TestEncodeFile_CapacityLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeCover(t, dir, "cover.bmp", 3, 4)
	out := filepath.Join(dir, "out.bmp")

	e, err := New(DefaultConfig())
	require.NoError(t, err)
	_, err = e.EncodeFile(make([]byte, 11), in, out)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDecode_Lenient(t *testing.T) {
	img := bitmap.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetPixel(y, x, bitmap.Pixel{R: 0xFF, G: 0xFF, B: 0xFF})
		}
	}

	strict, err := New(DefaultConfig())
	require.NoError(t, err)
	_, _, err = strict.Decode(img)
	assert.ErrorIs(t, err, ErrLengthExceedsCapacity)

	lenient, err := New(Config{Lenient: true})
	require.NoError(t, err)
	msg, _, err := lenient.Decode(img)
	require.NoError(t, err)
	assert.Len(t, msg, 65535)
}

func TestCapacityOf(t *testing.T) {
	in := writeCover(t, t.TempDir(), "cover.bmp", 4, 4)
	e, err := New(DefaultConfig())
	require.NoError(t, err)

	c, err := e.CapacityOf(in)
	require.NoError(t, err)
	assert.Equal(t, Capacity{Width: 4, Height: 4, Bits: 128, MaxBytes: 14}, c)
}

func TestIsVersionCompatible(t *testing.T) {
	tests := []struct {
		version, min string
		want         bool
	}{
		{"1.0.0", "1.0.0", true},
		{"1.1.0", "1.0.0", true},
		{"1.0.0", "1.0.1", false},
		{"2.0.0", "1.9.9", true},
		{"0.9.0", "1.0.0", false},
	}
	for _, tt := range tests {
		if got := isVersionCompatible(tt.version, tt.min); got != tt.want {
			t.Errorf("isVersionCompatible(%q, %q) = %v, want %v", tt.version, tt.min, got, tt.want)
		}
	}
	if err := validateModuleVersions(); err != nil {
		t.Errorf("validateModuleVersions() = %v", err)
	}
}
