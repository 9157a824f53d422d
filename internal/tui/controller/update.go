package controller

import (
	"adminctl/internal/permission"
	"adminctl/internal/tui/model"
	"adminctl/internal/tui/view"
	"adminctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch routes every message to its handler and refreshes
// derived view state afterwards.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg:
		// too frequent to log
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil

	case model.NoticeMsg:
		cmds = append(cmds,
			m.SetStatusMessage(msg.Notice.Text, model.MessageTypeFor(msg.Notice.Level), m.NoticeTTL),
			model.ListenForNoticesCmd(m.NoticeChannel))

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.PermissionsLoadedMsg:
		if m.Stale(msg.Gen) {
			LogDebug(m, controllerDispatchSubsystem, "discarding stale permissions (generation %d)", msg.Gen)
			break
		}
		cmds = append(cmds, applyPermissions(m, msg.Set))

	case model.PacksFetchedMsg:
		if m.Stale(msg.Gen) {
			break
		}
		m.PackCursor = clampCursor(m.PackCursor, len(m.Packs.Packs()))

	case model.AdminsFetchedMsg:
		if m.Stale(msg.Gen) {
			break
		}
		m.AdminCursor = clampCursor(m.AdminCursor, len(m.Admins.Admins()))

	case model.AdminMutationMsg:
		if m.Stale(msg.Gen) {
			break
		}
		m.AdminCursor = clampCursor(m.AdminCursor, len(m.Admins.Admins()))

	case model.FormLoadedMsg:
		if m.Stale(msg.Gen) || m.Form == nil {
			break
		}
		m.Form.Loading = false
		if msg.Err != nil {
			LogWarn(tuiSubsystem, "closing %q: %v", m.Form.Title, msg.Err)
			cmds = append(cmds, closeForm(m))
			break
		}
		m.Form.Reload()

	case model.FormSubmittedMsg:
		if m.Stale(msg.Gen) || m.Form == nil {
			break
		}
		LogDebug(m, controllerDispatchSubsystem, "form submit outcome: %s", msg.Outcome)
		if msg.Route != "" {
			m.Form = nil
			m.CurrentAppMode = model.ModeMain
			if panel := model.PanelForRoute(msg.Route); panel != "" && m.Tabs.SelectByPanel(panel) {
				syncStrip(m)
			}
			cmds = append(cmds, mountActivePanel(m))
		}
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

// applyPermissions recomputes the visible tabs and mounts the active panel.
func applyPermissions(m *model.Model, set permission.Set) tea.Cmd {
	m.Permissions = set
	m.PermissionsLoaded = true

	superAdmin := m.Session != nil && m.Session.IsSuperAdmin()
	visible := permission.VisibleEntries(m.Entries, set, superAdmin)
	m.Tabs.SetVisible(visible)
	syncStrip(m)
	LogInfo(tuiSubsystem, "%d of %d sections visible", len(visible), len(m.Entries))

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMain
	}
	return mountActivePanel(m)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(entry))
	}
	return m
}

func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty || m.CurrentAppMode != model.ModeLogOverlay {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.LogContent(m))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.ActivityLogDirty = false
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
