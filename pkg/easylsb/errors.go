package easylsb

import (
	"errors"

	"github.com/bft-labs/easylsb/pkg/bitmap"
	"github.com/bft-labs/easylsb/pkg/lsb"
)

// Errors returned by EasyLSB. Check them with errors.Is.
var (
	ErrCapacityExceeded      = lsb.ErrCapacityExceeded
	ErrLengthOverflow        = lsb.ErrLengthOverflow
	ErrLengthExceedsCapacity = lsb.ErrLengthExceedsCapacity
	ErrUnsupportedFormat     = bitmap.ErrUnsupportedFormat

	// ErrOutputExists is returned by EncodeFile when the output file exists
	// and Config.Force is not set.
	ErrOutputExists = errors.New("easylsb: output file exists")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("easylsb: invalid configuration")
)
