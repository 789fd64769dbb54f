package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "EASYLSB_"

// ApplyEnvConfig applies configuration from environment variables (EASYLSB_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv(EnvPrefix+"LOG_FORMAT"), &cfg.LogFormat)
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)

	if err := s.setDuration("debounce", os.Getenv(EnvPrefix+"WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBoolFromString("lenient", os.Getenv(EnvPrefix+"LENIENT"), &cfg.Lenient)
	s.setBoolFromString("force", os.Getenv(EnvPrefix+"FORCE"), &cfg.Force)

	return nil
}
