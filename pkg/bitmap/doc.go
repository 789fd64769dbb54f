// Package bitmap loads and saves the carrier images used by easylsb.
//
// An [Image] is an in-memory grid of 8-bit RGB pixels that satisfies
// lsb.Grid, so it can be handed straight to an encoder or decoder.
// Two lossless containers are supported: 24-bit BMP through
// golang.org/x/image/bmp and QOI through github.com/xfmoulet/qoi.
// Alpha is dropped on load and written back as fully opaque.
//
// # Usage
//
//	img, err := bitmap.Load("cover.bmp")
//	if err != nil {
//	    return err
//	}
//	// ... modify img ...
//	if err := bitmap.Save("out.bmp", img); err != nil {
//	    return err
//	}
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package bitmap
