// Package easylsb hides messages in the least significant bits of BMP and
// QOI images.
//
// Example usage:
//
//	e, err := easylsb.New(easylsb.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := e.EncodeFile([]byte("hello"), "cover.bmp", "out.bmp"); err != nil {
//	    log.Fatal(err)
//	}
//	msg, err := e.DecodeFile("out.bmp")
package easylsb

import (
	facade "github.com/bft-labs/easylsb/pkg/easylsb"
	"github.com/bft-labs/easylsb/pkg/lsb"
)

// Config holds the settings of an EasyLSB instance.
type Config = facade.Config

// EasyLSB encodes and decodes messages in image files.
type EasyLSB = facade.EasyLSB

// Option configures optional behavior of EasyLSB.
type Option = facade.Option

// New creates an EasyLSB instance with the given configuration.
func New(cfg Config, opts ...Option) (*EasyLSB, error) {
	return facade.New(cfg, opts...)
}

// DefaultConfig returns a strict, non-overwriting configuration.
func DefaultConfig() Config {
	return facade.DefaultConfig()
}

// MaxMessageLength is the longest message the 16-bit length prefix allows.
const MaxMessageLength = lsb.MaxMessageLength
