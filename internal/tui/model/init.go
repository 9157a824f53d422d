package model

import (
	"context"
	"time"

	"adminctl/internal/admins"
	"adminctl/internal/navigation"
	"adminctl/internal/notice"
	"adminctl/internal/packs"
	"adminctl/internal/permission"
	"adminctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultNoticeTTL = 5 * time.Second

// SettingsEntries are the nested settings tabs. They are not gated on their
// own: reaching the settings panel already required its permission.
var SettingsEntries = []permission.Entry{
	{Name: "Session", Panel: SettingsSession},
	{Name: "Permissions", Panel: SettingsPermissions},
	{Name: "Client", Panel: SettingsClient},
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "previous tab"),
		),
		SubNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next settings tab"),
		),
		SubPrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous settings tab"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "scroll tabs left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "scroll tabs right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete administrator"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle administrator status"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection/logs"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save form"),
		),
		AddLine: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add advantage"),
		),
		RemoveLine: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "remove advantage"),
		),
		ToggleChecked: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle checkbox"),
		),
	}
}

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(ctx context.Context, cfg TUIConfig, logChan <-chan logging.LogEntry) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.NoticeTTL <= 0 {
		cfg.NoticeTTL = defaultNoticeTTL
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	noticeCh := make(chan notice.Notice, noticeBufferSize)
	sink := notice.SinkFunc(func(n notice.Notice) {
		select {
		case noticeCh <- n:
		default:
			logging.Warn("TUI", "notice dropped, buffer full: %s", n.Text)
		}
	})

	settings := navigation.NewTabs()
	settings.SetVisible(SettingsEntries)

	m := &Model{
		CurrentAppMode: ModeInitializing,
		LastAppMode:    ModeMain,
		DebugMode:      cfg.DebugMode,

		Session:  cfg.Session,
		Client:   cfg.Client,
		Resolver: cfg.Resolver,
		Entries:  cfg.Entries,

		Permissions:  permission.NewSet(),
		Tabs:         navigation.NewTabs(),
		SettingsTabs: settings,
		Viewport:     navigation.NewViewport(cfg.BreakpointPx, cfg.CellWidthPx),

		RootCtx:       ctx,
		NoticeChannel: noticeCh,
		Notices:       sink,
		NoticeTTL:     cfg.NoticeTTL,

		Keys:        DefaultKeyMap(),
		Help:        help.New(),
		Spinner:     s,
		LogViewport: viewport.New(0, 0),

		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogChannel:       logChan,

		Packs:  packs.NewList(cfg.Client, sink),
		Admins: admins.NewList(cfg.Client, sink),

		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	return m
}

// Init starts the listeners and the spinner.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick, ListenForNoticesCmd(m.NoticeChannel)}
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	return tea.Batch(cmds...)
}
