package bitmap

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"

	"github.com/bft-labs/easylsb/internal/adapters/fs"
)

// Decode reads an image in the given container format.
func Decode(r io.Reader, f Format) (*Image, error) {
	var (
		m   image.Image
		err error
	)
	switch f {
	case FormatBMP:
		m, err = bmp.Decode(r)
	case FormatQOI:
		m, err = qoi.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return FromImage(m), nil
}

// Encode writes m in the given container format.
func Encode(w io.Writer, m *Image, f Format) error {
	var err error
	switch f {
	case FormatBMP:
		err = bmp.Encode(w, m.RGBA())
	case FormatQOI:
		err = qoi.Encode(w, m.RGBA())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Load reads an image file, detecting its container from the content.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := DetectFormat(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Decode(bytes.NewReader(data), f)
}

// Save writes m to path in the container named by the path's extension.
// The file is replaced atomically; on error the previous content is kept.
func Save(path string, m *Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return SaveAs(path, m, f)
}

// SaveAs writes m to path in container f, atomically.
func SaveAs(path string, m *Image, f Format) error {
	return fs.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, m, f)
	})
}

// CreateAs is SaveAs for a path that must not exist yet. If path already
// exists, including when it appears while m is being encoded, nothing is
// replaced and the error matches os.ErrExist.
func CreateAs(path string, m *Image, f Format) error {
	return fs.WriteFileExclusive(path, 0o644, func(w io.Writer) error {
		return Encode(w, m, f)
	})
}
