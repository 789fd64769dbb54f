package lsb

import "fmt"

const (
	// BitsPerByte is the number of message bits carried per message byte.
	BitsPerByte = 8

	// LengthBits is the size of the length prefix.
	LengthBits = 16

	// MaxMessageLength is the largest byte count the length prefix can hold.
	MaxMessageLength = 1<<LengthBits - 1
)

// BitBudget returns the number of message bits a width x height grid may
// carry, including the length prefix.
func BitBudget(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * BitsPerByte
}

// MaxPayload returns the largest message, in bytes, that fits in a
// width x height grid. It is 0 when even the length prefix does not fit.
func MaxPayload(width, height int) int {
	n := (BitBudget(width, height) - LengthBits) / BitsPerByte
	if n < 0 {
		return 0
	}
	if n > MaxMessageLength {
		return MaxMessageLength
	}
	return n
}

// CheckCapacity reports whether a message of msgLen bytes can be embedded
// in a width x height grid.
func CheckCapacity(msgLen, width, height int) error {
	if msgLen > MaxMessageLength {
		return fmt.Errorf("%w: got %d bytes", ErrLengthOverflow, msgLen)
	}
	need := msgLen*BitsPerByte + LengthBits
	if budget := BitBudget(width, height); need > budget {
		return fmt.Errorf("%w: need %d bits, %dx%d image holds %d",
			ErrCapacityExceeded, need, width, height, budget)
	}
	return nil
}
