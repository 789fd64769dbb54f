// Package easylsb embeds short messages in BMP and QOI images and reads
// them back.
//
// It ties the bit-level engine in package lsb to the image containers in
// package bitmap, adding file handling, configuration and logging. The
// CLI in cmd/easylsb is a thin shell over this package.
//
// # Usage
//
//	e, err := easylsb.New(easylsb.DefaultConfig(), easylsb.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if _, err := e.EncodeFile([]byte("meet at noon"), "cover.bmp", "out.bmp"); err != nil {
//	    return err
//	}
//	msg, err := e.DecodeFile("out.bmp")
//
// # Errors
//
// Capacity problems are reported before any file is written and can be
// matched with errors.Is against [ErrCapacityExceeded] and
// [ErrLengthOverflow]. A carrier whose length prefix is impossible fails
// with [ErrLengthExceedsCapacity] unless Config.Lenient is set.
package easylsb
