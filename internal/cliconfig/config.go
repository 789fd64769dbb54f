package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/bft-labs/easylsb/pkg/bitmap"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds CLI configuration for easylsb.
type Config struct {
	LogLevel  string
	LogFormat string

	// Lenient trusts the embedded length prefix when decoding.
	Lenient bool
	// Force overwrites an existing output image.
	Force bool
	// Format forces the output container; empty derives it from the extension.
	Format string

	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     LogFormatConsole,
		WatchDebounce: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and normalises values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat == "" {
		c.LogFormat = LogFormatConsole
	}
	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("log-format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}

	if c.Format != "" {
		f, err := bitmap.ParseFormat(c.Format)
		if err != nil {
			return fmt.Errorf("format: %w", err)
		}
		c.Format = string(f)
	}

	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch debounce must be positive")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
