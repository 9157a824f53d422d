package config

import (
	"time"
)

// GetDefaultConfig returns the configuration used when no file or
// environment variable says otherwise.
func GetDefaultConfig() AdminctlConfig {
	return AdminctlConfig{
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			BreakpointPx: 768,
			CellWidthPx:  8,
			NoticeTTL:    5 * time.Second,
		},
		Navigation: NavigationConfig{
			Packs:    []string{"manage_packs", "view_packs"},
			Admins:   []string{"manage_admins"},
			Settings: []string{"manage_settings"},
		},
	}
}
