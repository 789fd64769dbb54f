package lsb

import "math/rand"

// memGrid is a packed RGB grid used by the tests.
type memGrid struct {
	w, h int
	pix  []byte
}

func newMemGrid(w, h int) *memGrid {
	return &memGrid{w: w, h: h, pix: make([]byte, w*h*ChannelsPerPixel)}
}

// newNoisyGrid fills every channel from a seeded source.
func newNoisyGrid(w, h int, seed int64) *memGrid {
	g := newMemGrid(w, h)
	rand.New(rand.NewSource(seed)).Read(g.pix)
	return g
}

func (g *memGrid) Width() int  { return g.w }
func (g *memGrid) Height() int { return g.h }

func (g *memGrid) Channel(row, col int, c Channel) byte {
	return g.pix[(row*g.w+col)*ChannelsPerPixel+int(c)]
}

func (g *memGrid) SetChannel(row, col int, c Channel, v byte) {
	g.pix[(row*g.w+col)*ChannelsPerPixel+int(c)] = v
}

func (g *memGrid) clone() *memGrid {
	c := *g
	c.pix = append([]byte(nil), g.pix...)
	return &c
}
