package lsb

// Phase is the position of an encode or decode pass within the frame.
type Phase uint8

const (
	// PhaseLength covers the first LengthBits channel visits.
	PhaseLength Phase = iota
	// PhaseData covers length*8 visits after the prefix.
	PhaseData
	// PhaseDone is reached once the last message bit has been handled.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseLength:
		return "length"
	case PhaseData:
		return "data"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Stats summarises one pass over a grid.
type Stats struct {
	// Length is the message length in bytes carried by the prefix.
	Length int
	// Channels is the number of channel visits, LengthBits + Length*8.
	Channels int
	// MaxDepth is the highest bit position touched.
	MaxDepth uint8
	// Phase is the state the pass finished in.
	Phase Phase
}

// frame drives a cursor through the length and data phases.
type frame struct {
	cur   *Cursor
	phase Phase
	depth uint8
}

func newFrame(g Grid) *frame {
	return &frame{cur: NewCursor(g), phase: PhaseLength}
}

func (f *frame) put(bit byte) {
	f.depth = max(f.depth, f.cur.Depth())
	f.cur.writeBit(bit)
}

func (f *frame) get() byte {
	f.depth = max(f.depth, f.cur.Depth())
	return f.cur.readBit()
}

func (f *frame) stats(length int) Stats {
	return Stats{
		Length:   length,
		Channels: f.cur.Visited(),
		MaxDepth: f.depth,
		Phase:    f.phase,
	}
}
