package lsb

import "fmt"

// Channel selects one 8-bit color component of a pixel.
type Channel uint8

// Channels in traversal order.
const (
	Red Channel = iota
	Green
	Blue
)

// ChannelsPerPixel is the number of color channels carried by each pixel.
const ChannelsPerPixel = 3

// String returns the lowercase channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", uint8(c))
	}
}

// Grid is a mutable, rectangular grid of RGB pixels.
// Rows are indexed 0..Height()-1 and columns 0..Width()-1.
type Grid interface {
	Width() int
	Height() int

	// Channel returns one color component of the pixel at row, col.
	Channel(row, col int, c Channel) byte

	// SetChannel overwrites one color component in place.
	SetChannel(row, col int, c Channel, v byte)
}
