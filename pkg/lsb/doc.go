// Package lsb hides byte messages in the color channels of a pixel grid
// using least-significant-bit steganography.
//
// A message is framed as a 16-bit length prefix (the byte count, most
// significant bit first) followed by the message bytes, each most
// significant bit first. Every bit is carried by one color channel. The
// channels are visited row by row, left to right, red then green then
// blue for each pixel. When the last channel of the grid has been used,
// traversal wraps to the top-left pixel and continues one bit position
// higher, so a grid can hold more bits than it has channels.
//
// # Usage
//
//	enc, err := lsb.NewEncoder(grid, []byte("Hi"))
//	if err != nil {
//	    return err // ErrLengthOverflow or ErrCapacityExceeded
//	}
//	enc.Encode()
//
//	dec, err := lsb.NewDecoder(grid)
//	if err != nil {
//	    return err
//	}
//	msg, _, err := dec.Decode()
//
// Any type with Width, Height, Channel and SetChannel methods can act as
// a grid; see [Grid]. The bitmap package provides one backed by BMP and
// QOI files.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package lsb
