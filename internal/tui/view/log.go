package view

import (
	"strings"

	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// LogOverlaySize returns the viewport size of the log overlay.
func LogOverlaySize(width, height int) (int, int) {
	w := width - 10
	h := height - 10
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

// LogContent renders the activity log, coloured by level.
func LogContent(m *model.Model) string {
	lines := make([]string, len(m.ActivityLog))
	for i, line := range m.ActivityLog {
		lines[i] = styleLogLine(line)
	}
	return strings.Join(lines, "\n")
}

func styleLogLine(line string) string {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return design.LogErrorStyle.Render(line)
	case strings.Contains(line, "[WARN]"):
		return design.LogWarnStyle.Render(line)
	case strings.Contains(line, "[DEBUG]"):
		return design.LogDebugStyle.Render(line)
	default:
		return design.LogInfoStyle.Render(line)
	}
}

func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render("Activity log")
	hint := design.DimStyle.Render("↑/↓ scroll · y copy · esc close")
	box := design.LogOverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View(), hint))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
