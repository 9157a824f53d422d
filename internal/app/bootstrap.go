package app

import (
	"context"
	"fmt"
	"os"

	"adminctl/internal/config"
	"adminctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs adminctl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration, applies flag overrides and builds
// the services every front-end shares.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stderr)

	if cfg.AdminctlConfig == nil {
		loaded, err := config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load adminctl configuration")
			return nil, fmt.Errorf("failed to load adminctl configuration: %w", err)
		}
		cfg.AdminctlConfig = &loaded
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.applyOverrides(cfg.AdminctlConfig)
	if err := cfg.AdminctlConfig.Validate(); err != nil {
		return nil, err
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services exposes the shared services to CLI commands and the MCP server.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the effective configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run starts the interactive terminal UI.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
