package app

import (
	"time"

	"adminctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Flag overrides, applied after the layered config. Zero values leave
	// the loaded setting untouched.
	APIURL     string
	Token      string
	Timeout    time.Duration
	SuperAdmin *bool

	// Loaded configuration. NewApplication fills it when nil.
	AdminctlConfig *config.AdminctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool) *Config {
	return &Config{
		Debug: debug,
	}
}

// applyOverrides copies the flag values that were set onto ac.
func (c *Config) applyOverrides(ac *config.AdminctlConfig) {
	if c.APIURL != "" {
		ac.API.BaseURL = c.APIURL
	}
	if c.Token != "" {
		ac.Session.Token = c.Token
	}
	if c.Timeout > 0 {
		ac.API.Timeout = c.Timeout
	}
	if c.SuperAdmin != nil {
		ac.Session.SuperAdmin = *c.SuperAdmin
	}
}
