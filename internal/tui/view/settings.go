package view

import (
	"fmt"
	"strings"
	"time"

	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"
)

func renderSettings(m *model.Model) string {
	var body string
	switch m.ActiveSettingsPanel() {
	case model.SettingsSession:
		body = renderSessionSettings(m)
	case model.SettingsPermissions:
		body = renderPermissionSettings(m)
	case model.SettingsClient:
		body = renderClientSettings(m)
	}
	return renderSubTabs(m.SettingsTabs, m.Viewport.Mode()) + "\n\n" + body
}

func kv(label, value string) string {
	return design.LabelStyle.Render(label) + value
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func renderSessionSettings(m *model.Model) string {
	if m.Session == nil {
		return design.DimStyle.Render("No session.")
	}
	state := design.TextSuccessStyle.Render("active")
	if _, err := m.Session.Token(); err != nil {
		state = design.TextErrorStyle.Render(err.Error())
	}
	subject := m.Session.Subject()
	if subject == "" {
		subject = "-"
	}
	expires := "-"
	if t := m.Session.ExpiresAt(); !t.IsZero() {
		expires = t.Local().Format(time.RFC1123)
	}
	return strings.Join([]string{
		kv("State", state),
		kv("Subject", subject),
		kv("Super-admin", yesNo(m.Session.IsSuperAdmin())),
		kv("Expires", expires),
	}, "\n")
}

func renderPermissionSettings(m *model.Model) string {
	slugs := m.Permissions.Slugs()
	if len(slugs) == 0 {
		return design.DimStyle.Render("No permissions granted.")
	}
	lines := make([]string, 0, len(slugs)+1)
	lines = append(lines, design.TextSecondaryStyle.Render(fmt.Sprintf("%d granted (y to copy)", len(slugs))))
	for _, s := range slugs {
		lines = append(lines, "  • "+s)
	}
	return strings.Join(lines, "\n")
}

func renderClientSettings(m *model.Model) string {
	baseURL := m.BaseURL
	if baseURL == "" {
		baseURL = "(same origin)"
	}
	return strings.Join([]string{
		kv("API", baseURL),
		kv("Timeout", m.Timeout.String()),
		kv("Tab breakpoint", fmt.Sprintf("%d px", m.Viewport.BreakpointPx)),
		kv("Cell width", fmt.Sprintf("%d px", m.Viewport.CellWidthPx)),
		kv("Tab bar", fmt.Sprintf("%s at %d columns", m.Viewport.Mode(), m.Viewport.Cols())),
	}, "\n")
}
