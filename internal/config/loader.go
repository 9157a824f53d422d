package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osEnviron = os.Environ

const (
	userConfigDir    = ".config/adminctl"
	projectConfigDir = ".adminctl"
	configFileName   = "config.yaml"
)

// LoadConfig layers defaults, the user file, the project file and the
// environment, then validates the result.
func LoadConfig() (AdminctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if err := applyConfigFile(&config, userConfigPath); err != nil {
		return AdminctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if err := applyConfigFile(&config, projectConfigPath); err != nil {
		return AdminctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := applyEnv(&config); err != nil {
		return AdminctlConfig{}, err
	}

	if err := config.Validate(); err != nil {
		return AdminctlConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// applyConfigFile decodes filePath on top of config. Keys absent from the
// file keep their current value; lists present in the file replace the
// current list. A missing file is not an error.
func applyConfigFile(config *AdminctlConfig, filePath string) error {
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func applyEnv(config *AdminctlConfig) error {
	var overlay envOverlay
	if err := env.ParseWithOptions(&overlay, env.Options{Environment: environMap()}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overlay.APIURL != "" {
		config.API.BaseURL = overlay.APIURL
	}
	if overlay.Token != "" {
		config.Session.Token = overlay.Token
	}
	if overlay.SuperAdmin != nil {
		config.Session.SuperAdmin = *overlay.SuperAdmin
	}
	if overlay.Timeout != nil {
		config.API.Timeout = *overlay.Timeout
	}
	return nil
}

func environMap() map[string]string {
	out := map[string]string{}
	for _, kv := range osEnviron() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}

// Validate checks the values adminctl cannot work with.
func (c AdminctlConfig) Validate() error {
	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil {
			return fmt.Errorf("%w: api.baseURL: %w", ErrInvalid, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%w: api.baseURL must be an http or https URL, got %q", ErrInvalid, c.API.BaseURL)
		}
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalid)
	}
	if c.UI.BreakpointPx <= 0 {
		return fmt.Errorf("%w: ui.breakpointPx must be positive", ErrInvalid)
	}
	if c.UI.CellWidthPx <= 0 {
		return fmt.Errorf("%w: ui.cellWidthPx must be positive", ErrInvalid)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
