// Package config provides configuration management for adminctl.
//
// Configuration is layered; later sources override earlier ones:
//
//  1. Defaults (GetDefaultConfig)
//  2. User configuration (~/.config/adminctl/config.yaml)
//  3. Project configuration (./.adminctl/config.yaml)
//  4. Environment: ADMINCTL_API_URL, ADMINCTL_TOKEN, ADMINCTL_SUPER_ADMIN,
//     ADMINCTL_TIMEOUT
//
// Command line flags are applied by the cmd package on top of the result.
//
// # Configuration Structure
//
//	api:
//	  baseURL: "https://market.example.com"
//	  timeout: 30s
//	session:
//	  token: ""          # prefer ADMINCTL_TOKEN
//	  superAdmin: false
//	ui:
//	  breakpointPx: 768  # windowed tab strip at or above this width
//	  cellWidthPx: 8     # logical pixels per terminal column
//	  noticeTTL: 5s
//	navigation:
//	  packs: ["manage_packs", "view_packs"]
//	  admins: ["manage_admins"]
//	  settings: ["manage_settings"]
//
// A file only needs the keys it changes. Lists replace the list of the
// layer below rather than extending it.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	client := api.New(cfg.API.BaseURL, sess, api.WithTimeout(cfg.API.Timeout))
package config
