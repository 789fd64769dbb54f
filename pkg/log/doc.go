// Package log provides the logging abstraction used by easylsb.
//
// Library packages accept a [Logger] and default to [NoopLogger], so
// embedding easylsb produces no output unless asked to. The CLI wires a
// zerolog-backed adapter.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("encoded", log.String("output", path), log.Int("bytes", n))
//
// Use the no-op logger for tests:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
