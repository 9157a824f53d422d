package config

import (
	"time"
)

// AdminctlConfig is the top-level configuration structure for adminctl.
type AdminctlConfig struct {
	API        APIConfig        `yaml:"api"`
	Session    SessionConfig    `yaml:"session"`
	UI         UIConfig         `yaml:"ui"`
	Navigation NavigationConfig `yaml:"navigation"`
}

// APIConfig points adminctl at the marketplace backend.
type APIConfig struct {
	BaseURL string        `yaml:"baseURL,omitempty"` // e.g. "https://market.example.com"
	Timeout time.Duration `yaml:"timeout,omitempty"` // per request
}

// SessionConfig seeds the session at start-up. Prefer ADMINCTL_TOKEN over
// writing the token to a file.
type SessionConfig struct {
	Token      string `yaml:"token,omitempty"`
	SuperAdmin bool   `yaml:"superAdmin,omitempty"` // a token's is_super_admin claim can also enable it
}

// UIConfig tunes the terminal UI.
type UIConfig struct {
	BreakpointPx int           `yaml:"breakpointPx,omitempty"` // windowed tab strip at or above this width
	CellWidthPx  int           `yaml:"cellWidthPx,omitempty"`  // logical pixels per terminal column
	NoticeTTL    time.Duration `yaml:"noticeTTL,omitempty"`    // how long a notice stays in the status bar
}

// NavigationConfig lists the permission slugs that unlock each top-level tab.
// A tab is visible when any of its slugs is granted.
type NavigationConfig struct {
	Packs    []string `yaml:"packs,omitempty"`
	Admins   []string `yaml:"admins,omitempty"`
	Settings []string `yaml:"settings,omitempty"`
}

// envOverlay is read from the process environment after the files.
type envOverlay struct {
	APIURL     string         `env:"ADMINCTL_API_URL"`
	Token      string         `env:"ADMINCTL_TOKEN"`
	SuperAdmin *bool          `env:"ADMINCTL_SUPER_ADMIN"`
	Timeout    *time.Duration `env:"ADMINCTL_TIMEOUT"`
}
