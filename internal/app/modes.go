package app

import (
	"context"

	"adminctl/internal/tui/controller"
	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"
	"adminctl/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Initialize design system for TUI (dark mode by default)
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	ac := config.AdminctlConfig
	p := controller.NewProgram(ctx, model.TUIConfig{
		DebugMode:    config.Debug,
		Session:      services.Session,
		Client:       services.Client,
		Resolver:     services.Resolver,
		Entries:      NavigationEntries(ac.Navigation),
		BreakpointPx: ac.UI.BreakpointPx,
		CellWidthPx:  ac.UI.CellWidthPx,
		NoticeTTL:    ac.UI.NoticeTTL,
		BaseURL:      ac.API.BaseURL,
		Timeout:      ac.API.Timeout,
	}, logChan)

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
