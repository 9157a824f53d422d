package model

import (
	"context"
	"time"

	"adminctl/internal/admins"
	"adminctl/internal/api"
	"adminctl/internal/navigation"
	"adminctl/internal/notice"
	"adminctl/internal/packs"
	"adminctl/internal/permission"
	"adminctl/internal/session"
	"adminctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode defines the different states or views the TUI can be in.
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMain
	ModeForm
	ModeConfirm
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMain:
		return "Main"
	case ModeForm:
		return "Form"
	case ModeConfirm:
		return "Confirm"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Top-level panels and their list routes.
const (
	PanelPacks    = "packs"
	PanelAdmins   = "admins"
	PanelSettings = "settings"
)

// Settings sub-panels.
const (
	SettingsSession     = "settings.session"
	SettingsPermissions = "settings.permissions"
	SettingsClient      = "settings.client"
)

// PanelForRoute maps a form's parent route to the panel that shows it.
func PanelForRoute(route string) string {
	switch route {
	case packs.ListRoute:
		return PanelPacks
	case admins.ListRoute:
		return PanelAdmins
	default:
		return ""
	}
}

// MaxActivityLogLines caps the activity log kept in memory.
const MaxActivityLogLines = 1000

// noticeBufferSize bounds notices waiting for the program loop.
const noticeBufferSize = 64

// MessageType defines the type of message for the status bar.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MessageTypeFor maps a notice level onto the status bar palette.
func MessageTypeFor(level notice.Level) MessageType {
	switch level {
	case notice.Success:
		return StatusBarSuccess
	case notice.Warning:
		return StatusBarWarning
	case notice.Error:
		return StatusBarError
	default:
		return StatusBarInfo
	}
}

// TUIConfig holds everything the program needs from bootstrap.
type TUIConfig struct {
	DebugMode bool

	Session  *session.Session
	Client   *api.Client
	Resolver *permission.Resolver
	Entries  []permission.Entry

	BreakpointPx int
	CellWidthPx  int
	NoticeTTL    time.Duration

	// Shown on the settings screen.
	BaseURL string
	Timeout time.Duration
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	SubNext     key.Binding
	SubPrev     key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Quit        key.Binding
	Help        key.Binding
	Refresh     key.Binding
	New         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Toggle      key.Binding
	Copy        key.Binding
	ToggleLog   key.Binding
	ToggleDebug key.Binding

	// Form mode
	Submit        key.Binding
	AddLine       key.Binding
	RemoveLine    key.Binding
	ToggleChecked key.Binding
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns the bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.SubNext, k.SubPrev, k.ScrollLeft, k.ScrollRight},
		{k.Up, k.Down, k.Enter, k.New, k.Edit, k.Delete, k.Toggle, k.Refresh},
		{k.Submit, k.AddLine, k.RemoveLine, k.ToggleChecked, k.Esc},
		{k.Copy, k.ToggleLog, k.ToggleDebug, k.Help, k.Quit},
	}
}

// Model represents the state of the TUI application.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	// Session and backends
	Session  *session.Session
	Client   *api.Client
	Resolver *permission.Resolver
	Entries  []permission.Entry

	// Navigation
	Permissions       permission.Set
	PermissionsLoaded bool
	Tabs              *navigation.Tabs
	SettingsTabs      *navigation.Tabs
	Viewport          *navigation.Viewport
	Strip             navigation.Strip

	// Panel controllers
	Packs       *packs.List
	Admins      *admins.List
	PackCursor  int
	AdminCursor int
	Form        *FormState

	// Mount scope of the active panel. Results tagged with an older
	// generation are discarded.
	RootCtx     context.Context
	mountCtx    context.Context
	mountCancel context.CancelFunc
	MountGen    uint64

	// Notices raised by controllers, drained by the program loop
	NoticeChannel chan notice.Notice
	Notices       notice.Sink
	NoticeTTL     time.Duration

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// UI Components
	Keys        KeyMap
	Help        help.Model
	Spinner     spinner.Model
	LogViewport viewport.Model

	// Activity log
	ActivityLog      []string
	ActivityLogDirty bool
	LogChannel       <-chan logging.LogEntry

	// Shown on the settings screen
	BaseURL string
	Timeout time.Duration
}

// Remount cancels the outstanding work of the previous panel mount and
// opens a new scope. The returned generation tags results of the new mount.
func (m *Model) Remount() (context.Context, uint64) {
	if m.mountCancel != nil {
		m.mountCancel()
	}
	parent := m.RootCtx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	m.mountCtx = ctx
	m.mountCancel = cancel
	m.MountGen++
	return ctx, m.MountGen
}

// MountContext returns the scope of the current mount, opening one if none
// exists yet.
func (m *Model) MountContext() (context.Context, uint64) {
	if m.mountCancel == nil {
		return m.Remount()
	}
	return m.mountCtx, m.MountGen
}

// Unmount cancels the current scope without opening a new one.
func (m *Model) Unmount() {
	if m.mountCancel != nil {
		m.mountCancel()
		m.mountCancel = nil
		m.mountCtx = nil
	}
}

// Stale reports whether a result tagged gen belongs to an older mount.
func (m *Model) Stale(gen uint64) bool {
	return gen != m.MountGen
}

// ActivePanel returns the panel of the selected top-level tab, empty when
// no tab is visible.
func (m *Model) ActivePanel() string {
	e, ok := m.Tabs.ActiveEntry()
	if !ok {
		return ""
	}
	return e.Panel
}

// ActiveSettingsPanel returns the selected settings sub-panel.
func (m *Model) ActiveSettingsPanel() string {
	e, ok := m.SettingsTabs.ActiveEntry()
	if !ok {
		return ""
	}
	return e.Panel
}

// SetStatusMessage shows message in the status bar until clearAfter
// elapses or another message replaces it.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage empties the status bar.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}
