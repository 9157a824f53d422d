// Package admins manages administrator accounts: the list with its
// confirm-gated delete and status toggle, the derived activity figures and
// the account create/edit form.
package admins

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"adminctl/internal/api"
	"adminctl/internal/notice"
	"adminctl/pkg/logging"
)

const subsystem = "Admins"

// ErrNoConfirmation is returned when a confirm call has no matching request.
var ErrNoConfirmation = errors.New("no pending confirmation")

// Client is the subset of the API the administrator screens use.
type Client interface {
	ListAdmins(ctx context.Context) ([]api.Admin, error)
	GetAdmin(ctx context.Context, id int64) (*api.Admin, error)
	CreateAdmin(ctx context.Context, fields api.Fields) (string, error)
	UpdateAdmin(ctx context.Context, id int64, fields api.Fields) (string, error)
	DeleteAdmin(ctx context.Context, id int64) (string, error)
	ToggleAdminStatus(ctx context.Context, id int64) (string, error)
}

// Action is a mutation that needs confirmation.
type Action int

const (
	ActionDelete Action = iota
	ActionToggleStatus
)

func (a Action) String() string {
	if a == ActionToggleStatus {
		return "toggle-status"
	}
	return "delete"
}

// Confirmation is an open "are you sure" for one account.
type Confirmation struct {
	TargetID int64
	Action   Action
}

// Question is what the operator is asked before the action runs. name may
// be empty when the account is not in the loaded list.
func (c Confirmation) Question(name string) string {
	who := fmt.Sprintf("#%d", c.TargetID)
	if name != "" {
		who = fmt.Sprintf("%s (#%d)", name, c.TargetID)
	}
	if c.Action == ActionToggleStatus {
		return fmt.Sprintf("Change the status of administrator %s?", who)
	}
	return fmt.Sprintf("Delete administrator %s? This cannot be undone.", who)
}

// List is the administrator table controller.
type List struct {
	client  Client
	notices notice.Sink

	mu      sync.Mutex
	admins  []api.Admin
	pending *Confirmation
	loading bool
}

// NewList creates an empty list.
func NewList(c Client, sink notice.Sink) *List {
	if sink == nil {
		sink = notice.Discard
	}
	return &List{client: c, notices: sink}
}

// FetchList replaces the list with the server's. A 400/422 carrying a
// field map yields one notice per message; any other failure one notice.
func (l *List) FetchList(ctx context.Context) error {
	l.setLoading(true)
	defer l.setLoading(false)

	admins, err := l.client.ListAdmins(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn(subsystem, "list admins: %v", err)
		if apiErr, ok := api.AsError(err); ok && apiErr.IsValidation() {
			for _, msg := range apiErr.Messages() {
				l.notify(notice.Error, msg)
			}
		} else {
			l.notify(notice.Error, api.MessageOr(err, "Could not load administrators"))
		}
		return err
	}

	l.mu.Lock()
	l.admins = admins
	l.mu.Unlock()
	logging.Debug(subsystem, "loaded %d administrators", len(admins))
	return nil
}

// Admins returns a copy of the current list.
func (l *List) Admins() []api.Admin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]api.Admin(nil), l.admins...)
}

// Find returns the account with id from the current list.
func (l *List) Find(id int64) (api.Admin, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.admins {
		if a.ID == id {
			return a, true
		}
	}
	return api.Admin{}, false
}

func (l *List) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// RequestDelete opens a delete confirmation for id.
func (l *List) RequestDelete(id int64) { l.request(id, ActionDelete) }

// RequestToggleStatus opens a status toggle confirmation for id.
func (l *List) RequestToggleStatus(id int64) { l.request(id, ActionToggleStatus) }

func (l *List) request(id int64, action Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = &Confirmation{TargetID: id, Action: action}
}

// Pending returns the open confirmation, if any.
func (l *List) Pending() (Confirmation, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		return Confirmation{}, false
	}
	return *l.pending, true
}

// Cancel closes the open confirmation without doing anything.
func (l *List) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = nil
}

// ConfirmDelete deletes the account named by the open delete confirmation.
func (l *List) ConfirmDelete(ctx context.Context) error {
	return l.confirm(ctx, ActionDelete)
}

// ConfirmToggleStatus toggles the account named by the open toggle
// confirmation.
func (l *List) ConfirmToggleStatus(ctx context.Context) error {
	return l.confirm(ctx, ActionToggleStatus)
}

// Confirm runs whichever action is pending.
func (l *List) Confirm(ctx context.Context) error {
	c, ok := l.Pending()
	if !ok {
		return ErrNoConfirmation
	}
	return l.confirm(ctx, c.Action)
}

func (l *List) confirm(ctx context.Context, action Action) error {
	l.mu.Lock()
	c := l.pending
	if c == nil || c.Action != action {
		l.mu.Unlock()
		return fmt.Errorf("%w for %s", ErrNoConfirmation, action)
	}
	l.pending = nil
	l.mu.Unlock()

	var (
		msg      string
		err      error
		fallback string
		done     string
	)
	switch action {
	case ActionDelete:
		msg, err = l.client.DeleteAdmin(ctx, c.TargetID)
		fallback, done = "Could not delete the administrator", "Administrator deleted"
	case ActionToggleStatus:
		msg, err = l.client.ToggleAdminStatus(ctx, c.TargetID)
		fallback, done = "Could not change the administrator status", "Administrator status updated"
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn(subsystem, "%s admin %d: %v", action, c.TargetID, err)
		l.notify(notice.Error, rejectionText(err, fallback))
		return err
	}

	if msg == "" {
		msg = done
	}
	logging.Info(subsystem, "%s admin %d: %s", action, c.TargetID, msg)
	l.notify(notice.Success, msg)
	return l.FetchList(ctx)
}

// rejectionText prefers the server's own words.
func rejectionText(err error, fallback string) string {
	apiErr, ok := api.AsError(err)
	if !ok {
		return fallback
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	if m := apiErr.FirstMessage(); m != "" {
		return m
	}
	return fallback
}

func (l *List) setLoading(v bool) {
	l.mu.Lock()
	l.loading = v
	l.mu.Unlock()
}

func (l *List) notify(level notice.Level, text string) {
	l.notices.Notify(notice.Notice{Level: level, Text: text})
}
