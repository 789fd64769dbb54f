package bitmap

import (
	"image"
	"image/color"

	"github.com/bft-labs/easylsb/pkg/lsb"
)

// Pixel is one RGB pixel with 8 bits per channel.
type Pixel struct {
	R, G, B uint8
}

// Image is a height x width grid of pixels stored row by row.
type Image struct {
	width  int
	height int
	pix    []Pixel
}

var _ lsb.Grid = (*Image)(nil)

// New returns a black image of the given size.
func New(width, height int) *Image {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Image{width: width, height: height, pix: make([]Pixel, width*height)}
}

// FromImage copies m into a new Image. The top-left pixel of m's bounds
// becomes row 0, column 0.
func FromImage(m image.Image) *Image {
	b := m.Bounds()
	img := New(b.Dx(), b.Dy())

	switch src := m.(type) {
	case *image.RGBA:
		img.copyPix(src.Pix, src.Stride, b.Dx(), b.Dy(), src.PixOffset(b.Min.X, b.Min.Y))
	case *image.NRGBA:
		img.copyPix(src.Pix, src.Stride, b.Dx(), b.Dy(), src.PixOffset(b.Min.X, b.Min.Y))
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				img.pix[y*img.width+x] = Pixel{R: c.R, G: c.G, B: c.B}
			}
		}
	}
	return img
}

// copyPix copies from a 4-bytes-per-pixel buffer, dropping alpha.
func (m *Image) copyPix(pix []uint8, stride, w, h, off int) {
	for y := 0; y < h; y++ {
		row := pix[off+y*stride : off+y*stride+w*4]
		for x := 0; x < w; x++ {
			m.pix[y*w+x] = Pixel{R: row[x*4], G: row[x*4+1], B: row[x*4+2]}
		}
	}
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Pixel returns the pixel at row, col.
func (m *Image) Pixel(row, col int) Pixel {
	return m.pix[row*m.width+col]
}

// SetPixel overwrites the pixel at row, col.
func (m *Image) SetPixel(row, col int, p Pixel) {
	m.pix[row*m.width+col] = p
}

// Channel returns one color component of the pixel at row, col.
func (m *Image) Channel(row, col int, c lsb.Channel) byte {
	p := &m.pix[row*m.width+col]
	switch c {
	case lsb.Red:
		return p.R
	case lsb.Green:
		return p.G
	default:
		return p.B
	}
}

// SetChannel overwrites one color component of the pixel at row, col.
func (m *Image) SetChannel(row, col int, c lsb.Channel, v byte) {
	p := &m.pix[row*m.width+col]
	switch c {
	case lsb.Red:
		p.R = v
	case lsb.Green:
		p.G = v
	default:
		p.B = v
	}
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	c := *m
	c.pix = append([]Pixel(nil), m.pix...)
	return &c
}

// RGBA converts m to an opaque *image.RGBA.
func (m *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for i, p := range m.pix {
		out.Pix[i*4] = p.R
		out.Pix[i*4+1] = p.G
		out.Pix[i*4+2] = p.B
		out.Pix[i*4+3] = 0xFF
	}
	return out
}
