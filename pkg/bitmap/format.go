package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for containers other than BMP and QOI.
var ErrUnsupportedFormat = errors.New("bitmap: unsupported image format")

// Format identifies an image container.
type Format string

const (
	FormatBMP Format = "bmp"
	FormatQOI Format = "qoi"
)

var (
	bmpMagic = []byte("BM")
	qoiMagic = []byte("qoif")
)

// ParseFormat accepts "bmp" or "qoi", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatBMP, FormatQOI:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the container from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// DetectFormat sniffs the container from the first bytes of a file.
func DetectFormat(header []byte) (Format, error) {
	switch {
	case bytes.HasPrefix(header, qoiMagic):
		return FormatQOI, nil
	case bytes.HasPrefix(header, bmpMagic):
		return FormatBMP, nil
	default:
		return "", ErrUnsupportedFormat
	}
}
