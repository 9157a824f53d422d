package model

import (
	"adminctl/internal/form"
	"adminctl/internal/notice"
	"adminctl/internal/permission"
	"adminctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ClearStatusBarMsg empties the status bar once a notice has expired.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// NoticeMsg carries one notice raised by a controller.
type NoticeMsg struct {
	Notice notice.Notice
}

// PermissionsLoadedMsg reports the resolved permission set.
type PermissionsLoadedMsg struct {
	Gen uint64
	Set permission.Set
}

// PacksFetchedMsg reports a finished pack list fetch.
type PacksFetchedMsg struct {
	Gen uint64
	Err error
}

// AdminsFetchedMsg reports a finished administrator list fetch.
type AdminsFetchedMsg struct {
	Gen uint64
	Err error
}

// AdminMutationMsg reports a confirmed delete or status toggle.
type AdminMutationMsg struct {
	Gen uint64
	Err error
}

// FormLoadedMsg reports that an edit form received its entity.
type FormLoadedMsg struct {
	Gen uint64
	Err error
}

// FormSubmittedMsg reports the outcome of a form submit. Route is the
// screen the form asked to navigate to, empty when it stays open.
type FormSubmittedMsg struct {
	Gen     uint64
	Outcome form.Outcome
	Route   string
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed so the listener stops.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ListenForNoticesCmd waits for the next controller notice.
func ListenForNoticesCmd(ch <-chan notice.Notice) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return NoticeMsg{Notice: n}
	}
}
