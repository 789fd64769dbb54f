package lsb

// Encoder embeds one message into a grid.
type Encoder struct {
	grid Grid
	msg  []byte
}

// NewEncoder validates that msg fits in g. It returns an error wrapping
// ErrLengthOverflow or ErrCapacityExceeded without touching the grid.
func NewEncoder(g Grid, msg []byte) (*Encoder, error) {
	if err := CheckCapacity(len(msg), g.Width(), g.Height()); err != nil {
		return nil, err
	}
	return &Encoder{grid: g, msg: msg}, nil
}

// Encode writes the length prefix and the message into the grid in place.
// Channels beyond the last message bit are left untouched.
func (e *Encoder) Encode() Stats {
	f := newFrame(e.grid)

	n := uint16(len(e.msg))
	for shift := LengthBits - 1; shift >= 0; shift-- {
		f.put(byte(n >> shift))
	}

	f.phase = PhaseData
	for _, b := range e.msg {
		for shift := BitsPerByte - 1; shift >= 0; shift-- {
			f.put(b >> shift)
		}
	}

	f.phase = PhaseDone
	return f.stats(len(e.msg))
}
