package easylsb

import "github.com/bft-labs/easylsb/pkg/log"

// Option configures optional behavior of EasyLSB.
type Option func(*options)

type options struct {
	logger log.Logger
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
