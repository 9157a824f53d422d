package controller

import (
	"encoding/json"
	"strings"
	"time"

	"adminctl/internal/navigation"
	"adminctl/internal/tui/model"
	"adminctl/internal/tui/view"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

const copyStatusTTL = 3 * time.Second

// handleKeyMsg routes a key press by mode, then to the active panel.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyCtrlC {
		return quit(m), nil
	}

	switch m.CurrentAppMode {
	case model.ModeForm:
		return handleFormKey(m, keyMsg)
	case model.ModeConfirm:
		return handleConfirmKey(m, keyMsg)
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = m.LastAppMode
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m), nil
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		refreshLogViewport(m)
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.Refresh):
		LogInfo(tuiSubsystem, "reloading permissions")
		return m, loadPermissions(m)
	}

	if m.Tabs.State() != navigation.Ready {
		return m, nil
	}

	if cmd, handled := handleTabKey(m, keyMsg); handled {
		return m, cmd
	}

	switch m.ActivePanel() {
	case model.PanelPacks:
		return handlePacksKey(m, keyMsg)
	case model.PanelAdmins:
		return handleAdminsKey(m, keyMsg)
	case model.PanelSettings:
		return handleSettingsKey(m, keyMsg)
	}
	return m, nil
}

// handleTabKey moves between top-level tabs. A change of tab remounts the
// panel, which cancels the old panel's request.
func handleTabKey(m *model.Model, keyMsg tea.KeyMsg) (tea.Cmd, bool) {
	changed := false
	switch {
	case key.Matches(keyMsg, m.Keys.Tab):
		changed = m.Tabs.Next()
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		changed = m.Tabs.Prev()
	case key.Matches(keyMsg, m.Keys.ScrollLeft):
		if m.Viewport.Mode() == navigation.ModeWindowed {
			m.Strip.Scroll(-view.StripWidth(m.Width) / 2)
		}
		return nil, true
	case key.Matches(keyMsg, m.Keys.ScrollRight):
		if m.Viewport.Mode() == navigation.ModeWindowed {
			m.Strip.Scroll(view.StripWidth(m.Width) / 2)
		}
		return nil, true
	default:
		s := keyMsg.String()
		if len(s) != 1 || s[0] < '1' || s[0] > '9' {
			return nil, false
		}
		i := int(s[0] - '1')
		if i == m.Tabs.Active() {
			return nil, true
		}
		changed = m.Tabs.Jump(i)
	}
	if !changed {
		return nil, true
	}
	syncStrip(m)
	return mountActivePanel(m), true
}

func handlePacksKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	list := m.Packs.Packs()
	// A fetch dropped as stale may still have replaced the list.
	m.PackCursor = clampCursor(m.PackCursor, len(list))
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.PackCursor = clampCursor(m.PackCursor-1, len(list))
	case key.Matches(keyMsg, m.Keys.Down):
		m.PackCursor = clampCursor(m.PackCursor+1, len(list))
	case key.Matches(keyMsg, m.Keys.New):
		return m, openPackForm(m, 0)
	case key.Matches(keyMsg, m.Keys.Edit), key.Matches(keyMsg, m.Keys.Enter):
		if len(list) == 0 {
			return m, nil
		}
		return m, openPackForm(m, list[m.PackCursor].ID)
	case key.Matches(keyMsg, m.Keys.Copy):
		if len(list) == 0 {
			return m, nil
		}
		data, err := json.MarshalIndent(list[m.PackCursor], "", "  ")
		if err != nil {
			LogError(tuiSubsystem, err, "encode pack")
			return m, nil
		}
		return m, copyToClipboard(m, string(data), "Pack copied to clipboard")
	}
	return m, nil
}

func handleAdminsKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	list := m.Admins.Admins()
	m.AdminCursor = clampCursor(m.AdminCursor, len(list))
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.AdminCursor = clampCursor(m.AdminCursor-1, len(list))
	case key.Matches(keyMsg, m.Keys.Down):
		m.AdminCursor = clampCursor(m.AdminCursor+1, len(list))
	case key.Matches(keyMsg, m.Keys.New):
		return m, openAdminForm(m, 0)
	case key.Matches(keyMsg, m.Keys.Edit), key.Matches(keyMsg, m.Keys.Enter):
		if len(list) == 0 {
			return m, nil
		}
		return m, openAdminForm(m, list[m.AdminCursor].ID)
	case key.Matches(keyMsg, m.Keys.Delete):
		if len(list) == 0 {
			return m, nil
		}
		m.Admins.RequestDelete(list[m.AdminCursor].ID)
		m.CurrentAppMode = model.ModeConfirm
	case key.Matches(keyMsg, m.Keys.Toggle):
		if len(list) == 0 {
			return m, nil
		}
		m.Admins.RequestToggleStatus(list[m.AdminCursor].ID)
		m.CurrentAppMode = model.ModeConfirm
	}
	return m, nil
}

func handleSettingsKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.SubNext):
		m.SettingsTabs.Next()
	case key.Matches(keyMsg, m.Keys.SubPrev):
		m.SettingsTabs.Prev()
	case key.Matches(keyMsg, m.Keys.Copy):
		if m.ActiveSettingsPanel() == model.SettingsPermissions {
			return m, copyToClipboard(m, strings.Join(m.Permissions.Slugs(), "\n"), "Permissions copied to clipboard")
		}
	}
	return m, nil
}

// handleConfirmKey answers the open confirmation. Only an explicit yes
// fires the mutation.
func handleConfirmKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if _, ok := m.Admins.Pending(); !ok {
		m.CurrentAppMode = model.ModeMain
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.CurrentAppMode = model.ModeMain
		ctx, gen := m.MountContext()
		return m, confirmAdminCmd(ctx, gen, m.Admins)
	case "n", "N", "esc":
		m.Admins.Cancel()
		m.CurrentAppMode = model.ModeMain
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard")
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
	return m, cmd
}

func copyToClipboard(m *model.Model, text, done string) tea.Cmd {
	if err := writeClipboard(text); err != nil {
		LogError(tuiSubsystem, err, "copy to clipboard")
		return m.SetStatusMessage("Copy to clipboard failed", model.StatusBarError, copyStatusTTL)
	}
	return m.SetStatusMessage(done, model.StatusBarSuccess, copyStatusTTL)
}

func quit(m *model.Model) *model.Model {
	m.Unmount()
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye."
	return m
}
