package easylsb

import (
	"fmt"

	"github.com/bft-labs/easylsb/pkg/bitmap"
)

// Config holds the settings of an EasyLSB instance.
type Config struct {
	// Lenient decodes whatever the length prefix says, even when it cannot
	// fit in the image.
	Lenient bool

	// Force allows EncodeFile to replace an existing output file.
	Force bool

	// Format selects the output container ("bmp" or "qoi").
	// Empty means: derive it from the output file extension.
	Format string
}

// DefaultConfig returns a strict, non-overwriting configuration.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Format == "" {
		return nil
	}
	if _, err := bitmap.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalidConfig, err)
	}
	return nil
}
