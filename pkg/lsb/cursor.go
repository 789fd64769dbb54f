package lsb

// Cursor walks every color channel of a Grid in a fixed order: red, green
// and blue of each pixel, pixels left to right, rows top to bottom. After
// the last channel it returns to the red channel of the top-left pixel and
// the wraparound depth goes up by one.
//
// The cursor holds indices, not references into pixel memory, so the grid
// may reallocate its storage between calls.
type Cursor struct {
	grid    Grid
	row     int
	col     int
	channel Channel
	depth   uint8
	visited int
}

// NewCursor returns a cursor on the red channel of pixel (0, 0) at depth 0.
// The grid must have at least one pixel.
func NewCursor(g Grid) *Cursor {
	return &Cursor{grid: g, channel: Red}
}

// Value returns the channel under the cursor.
func (c *Cursor) Value() byte {
	return c.grid.Channel(c.row, c.col, c.channel)
}

// Replace overwrites the channel under the cursor.
func (c *Cursor) Replace(v byte) {
	c.grid.SetChannel(c.row, c.col, c.channel, v)
}

// Advance moves to the next channel in traversal order.
//
// A wrap past depth MaxDepth starts over at bit 0. Encoders and strict
// decoders never get there: the capacity check keeps every valid message
// under three passes.
func (c *Cursor) Advance() {
	c.visited++
	if c.channel < Blue {
		c.channel++
		return
	}
	c.channel = Red
	switch {
	case c.col < c.grid.Width()-1:
		c.col++
	case c.row < c.grid.Height()-1:
		c.row++
		c.col = 0
	default:
		c.row, c.col = 0, 0
		c.depth = (c.depth + 1) & MaxDepth
	}
}

// Depth returns the wraparound depth, the bit position currently in use.
func (c *Cursor) Depth() uint8 {
	return c.depth
}

// Position returns the pixel and channel under the cursor.
func (c *Cursor) Position() (row, col int, ch Channel) {
	return c.row, c.col, c.channel
}

// Visited returns how many times Advance has been called.
func (c *Cursor) Visited() int {
	return c.visited
}

// writeBit stores bit (0 or 1) at the current depth and advances.
func (c *Cursor) writeBit(bit byte) {
	d := c.depth
	c.Replace(c.Value()&WriteMask(d) | (bit&1)<<d)
	c.Advance()
}

// readBit returns the bit at the current depth and advances.
func (c *Cursor) readBit() byte {
	d := c.depth
	b := (c.Value() & ReadMask(d)) >> d
	c.Advance()
	return b
}
