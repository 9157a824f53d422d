package components

import (
	"strings"

	"adminctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Header is the top line: title, signed-in subject and the layout mode.
type Header struct {
	Title      string
	Subject    string
	SuperAdmin bool
	// Spinner is shown in front of the title while something is loading.
	Spinner string
	// Meta is right aligned and dropped first when space runs out.
	Meta  string
	Width int
}

func (h Header) left() string {
	var parts []string
	if h.Spinner != "" {
		parts = append(parts, h.Spinner)
	}
	parts = append(parts, h.Title)
	if h.Subject != "" {
		parts = append(parts, design.TextSecondaryStyle.Render(h.Subject))
	}
	if h.SuperAdmin {
		parts = append(parts, design.TextWarningStyle.Render("★ super-admin"))
	}
	return strings.Join(parts, " ")
}

// Render returns the styled header line.
func (h Header) Render() string {
	left := h.left()
	avail := h.Width - design.SpaceSM*2

	content := left
	if h.Meta != "" {
		gap := avail - lipgloss.Width(left) - lipgloss.Width(h.Meta)
		if gap >= 2 {
			content = left + strings.Repeat(" ", gap) + h.Meta
		}
	}
	if lipgloss.Width(content) > avail && avail > 0 {
		content = lipgloss.NewStyle().MaxWidth(avail).Render(content)
	}
	if h.Width <= 0 {
		return design.HeaderStyle.Render(content)
	}
	return design.HeaderStyle.Width(h.Width).MaxWidth(h.Width).Render(content)
}
