package controller

import (
	"context"

	"adminctl/internal/tui/model"
	"adminctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program. Work started by panels is
// scoped to ctx.
func NewProgram(ctx context.Context, cfg model.TUIConfig, logChannel <-chan logging.LogEntry) *tea.Program {
	m := model.InitialModel(ctx, cfg, logChannel)
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
}
