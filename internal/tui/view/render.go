package view

import (
	"fmt"
	"strings"

	"adminctl/internal/navigation"
	"adminctl/internal/tui/components"
	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "adminctl"

// Render builds the whole screen for the current mode.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m.QuittingMessage + "\n"
	case model.ModeInitializing:
		if m.Width == 0 {
			return m.Spinner.View() + " Resolving permissions…"
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			m.Spinner.View()+" Resolving permissions…")
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	}

	main := renderMain(m)
	if m.CurrentAppMode == model.ModeConfirm {
		if overlay := renderConfirmOverlay(m); overlay != "" {
			return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
		}
	}
	return main
}

func renderMain(m *model.Model) string {
	width := m.Width
	if width <= 0 {
		width = 80
	}

	header := renderHeader(m, width)
	tabBar := renderTabBar(m)
	status := renderStatusBar(m, width)

	used := lipgloss.Height(header) + lipgloss.Height(status)
	if tabBar != "" {
		used += lipgloss.Height(tabBar)
	}
	bodyHeight := m.Height - used
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := renderBody(m, width-design.SpaceSM*2)
	body = lipgloss.NewStyle().
		Padding(0, design.SpaceSM).
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	parts := []string{header}
	if tabBar != "" {
		parts = append(parts, tabBar)
	}
	parts = append(parts, body, status)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(m *model.Model, width int) string {
	h := components.Header{Title: design.TitleStyle.Render(appTitle), Width: width}
	if m.Session != nil {
		h.Subject = m.Session.Subject()
		h.SuperAdmin = m.Session.IsSuperAdmin()
	}
	if busy(m) {
		h.Spinner = m.Spinner.View()
	}
	meta := m.Viewport.Mode().String()
	if m.DebugMode {
		meta = fmt.Sprintf("%s · gen %d · %dx%d", meta, m.MountGen, m.Width, m.Height)
	}
	h.Meta = design.DimStyle.Render(meta)
	return h.Render()
}

func busy(m *model.Model) bool {
	if m.Tabs.State() == navigation.Loading || m.Tabs.Refetching() {
		return true
	}
	switch m.ActivePanel() {
	case model.PanelPacks:
		return m.Packs.Loading()
	case model.PanelAdmins:
		return m.Admins.Loading()
	}
	return false
}

func renderBody(m *model.Model, width int) string {
	if m.Form != nil {
		return renderForm(m)
	}
	switch m.Tabs.State() {
	case navigation.Loading:
		return m.Spinner.View() + " Resolving permissions…"
	case navigation.Empty:
		return design.TextWarningStyle.Render("Your account has no access to any section.") + "\n" +
			design.DimStyle.Render("Ask a super-admin for permissions, then press r to reload.")
	}

	switch m.ActivePanel() {
	case model.PanelPacks:
		return renderPacks(m, width)
	case model.PanelAdmins:
		return renderAdmins(m, width)
	case model.PanelSettings:
		return renderSettings(m)
	}
	return ""
}

func renderStatusBar(m *model.Model, width int) string {
	left := fmt.Sprintf("%d permissions", m.Permissions.Len())
	if !m.PermissionsLoaded {
		left = "permissions pending"
	}
	return components.NewStatusBar(width).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		WithLeftText(left).
		WithRightText(shortHelp(m)).
		Render()
}

func shortHelp(m *model.Model) string {
	var parts []string
	for _, b := range m.Keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Keys")
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	box := design.CenteredOverlayContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
