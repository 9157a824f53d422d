package controller

import (
	"adminctl/internal/navigation"
	"adminctl/internal/tui/model"
	"adminctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg stores the terminal size and re-evaluates the tab
// presentation mode on every resize.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	if m.Viewport.Resize(msg.Width) {
		LogDebug(m, tuiSubsystem, "tab bar switched to %s mode at %d columns", m.Viewport.Mode(), msg.Width)
	}
	syncStrip(m)

	w, h := view.LogOverlaySize(m.Width, m.Height)
	m.LogViewport.Width = w
	m.LogViewport.Height = h
	m.ActivityLogDirty = true
	m.Help.Width = msg.Width
	refreshLogViewport(m)
	return m, nil
}

// syncStrip recomputes the windowed strip extents and keeps the active tab
// in view.
func syncStrip(m *model.Model) {
	if m.Viewport.Mode() != navigation.ModeWindowed {
		return
	}
	entries := m.Tabs.Entries()
	starts, ends, total := view.TabLayout(entries)
	m.Strip.Resize(total, view.StripWidth(m.Width))
	if m.Tabs.State() == navigation.Ready && len(entries) > 0 {
		i := m.Tabs.Active()
		m.Strip.EnsureVisible(starts[i], ends[i])
	}
}
