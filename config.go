package rnav

import (
	"github.com/BurntSushi/toml"
	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/serr"
)

// Config holds navigator configuration.
type Config struct {
	// Fallback is the route navigated to when a rejection occurs before any
	// route has settled (cold entry into an invalid deep link). Required.
	Fallback string `toml:"fallback"`

	// Verbose enables per-navigation logging.
	Verbose bool `toml:"verbose"`

	// HistoryLimit caps the settled-location history used for back
	// navigation. Zero means consts.DefaultHistoryLimit.
	HistoryLimit int `toml:"history_limit"`
}

// LoadConfig reads a Config from a TOML file and validates it, so a broken
// configuration is reported at startup rather than at rejection time.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, serr.Wrap(err, "unable to load navigator config")
	}

	return cfg, cfg.validate()
}

// validate checks the configuration for startup-fatal problems.
func (c Config) validate() error {
	if c.Fallback == "" {
		return &ConfigError{Field: "fallback", Err: serr.New("fallback route is required")}
	}

	if c.Fallback[0] != consts.RuneFwdSlash {
		return &ConfigError{Field: "fallback", Err: serr.New("fallback route must start with /")}
	}

	return nil
}
