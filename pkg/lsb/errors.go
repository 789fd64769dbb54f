package lsb

import "errors"

// Errors returned by the encoder and decoder constructors and by Decode.
// They are wrapped with the offending sizes and can be checked with errors.Is.
var (
	// ErrCapacityExceeded is returned when the message plus the length field
	// needs more bits than the grid has channel bits.
	ErrCapacityExceeded = errors.New("lsb: message exceeds image capacity")

	// ErrLengthOverflow is returned when the message is longer than the
	// 16-bit length field can describe.
	ErrLengthOverflow = errors.New("lsb: message length exceeds 65535 bytes")

	// ErrLengthExceedsCapacity is returned by a strict decoder when the
	// embedded length field describes more data than the grid can carry,
	// which means the image was not produced by an encoder.
	ErrLengthExceedsCapacity = errors.New("lsb: embedded length exceeds image capacity")
)
