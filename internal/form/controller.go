package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"adminctl/internal/api"
	"adminctl/internal/notice"
	"adminctl/pkg/logging"
)

// ErrUnknownField is returned by UpdateField for names the schema lacks.
var ErrUnknownField = errors.New("unknown form field")

// SubmitFunc sends a payload and returns the server message.
type SubmitFunc func(ctx context.Context, fields api.Fields) (string, error)

// Navigator moves the host to another screen.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Outcome is the result of a submit.
type Outcome int

const (
	OutcomeSaved Outcome = iota
	OutcomeInvalid
	OutcomeRejected
	OutcomeFailed
	OutcomeBusy
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	case OutcomeBusy:
		return "busy"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Config wires a controller to its entity.
type Config struct {
	Schema Schema
	Submit SubmitFunc

	Notices   notice.Sink
	Navigator Navigator
	// ParentRoute is where a successful submit navigates to.
	ParentRoute string
	// MethodOverride is sent as _method ("PUT" for edit forms).
	MethodOverride string

	// SuccessText is used when the server returns no message.
	SuccessText string
	// FailureText is used when neither a field error nor a message exists.
	FailureText string
	// Subsystem tags log lines.
	Subsystem string
}

// Controller owns one form's draft and runs its submit cycle.
type Controller struct {
	cfg Config

	mu      sync.Mutex
	draft   *Draft
	loading bool
}

// NewController creates a controller with a fresh draft.
func NewController(cfg Config) *Controller {
	if cfg.Notices == nil {
		cfg.Notices = notice.Discard
	}
	if cfg.SuccessText == "" {
		cfg.SuccessText = "Saved"
	}
	if cfg.FailureText == "" {
		cfg.FailureText = "Something went wrong, please try again"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "Form"
	}
	return &Controller{cfg: cfg, draft: NewDraft(cfg.Schema)}
}

// Schema returns the form definition.
func (c *Controller) Schema() Schema { return c.cfg.Schema }

// Draft returns a snapshot of the current draft.
func (c *Controller) Draft() *Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Load replaces the draft, typically with values fetched for editing.
func (c *Controller) Load(d *Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d.Clone()
}

// Loading reports whether a submit is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// UpdateField stores input for name. Bool fields take a bool (or a
// strconv.ParseBool string); other fields keep strings raw and numbers as
// their decimal text.
func (c *Controller) UpdateField(name string, value any) error {
	f, ok := c.cfg.Schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if f.Kind == Bool {
		switch v := value.(type) {
		case bool:
			c.draft.SetFlag(name, v)
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			c.draft.SetFlag(name, b)
		default:
			return fmt.Errorf("field %q: expected a boolean, got %T", name, value)
		}
		return nil
	}

	switch v := value.(type) {
	case string:
		c.draft.Set(name, v)
	case int:
		c.draft.Set(name, strconv.Itoa(v))
	case int64:
		c.draft.Set(name, strconv.FormatInt(v, 10))
	case float64:
		c.draft.Set(name, strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		return fmt.Errorf("field %q: expected text, got bool", name)
	default:
		c.draft.Set(name, fmt.Sprint(v))
	}
	return nil
}

// AddAdvantage appends a blank advantage line.
func (c *Controller) AddAdvantage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.AddLine()
}

// RemoveAdvantage drops line i; the lone remaining line is kept.
func (c *Controller) RemoveAdvantage(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.RemoveLine(i)
}

// UpdateAdvantage replaces line i.
func (c *Controller) UpdateAdvantage(i int, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.UpdateLine(i, value)
}

// Submit validates the draft and, when it passes, sends it. Every outcome
// except Busy and Cancelled emits exactly one notice.
func (c *Controller) Submit(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return OutcomeBusy
	}
	if v := Validate(c.cfg.Schema, c.draft); v != nil {
		c.mu.Unlock()
		logging.Debug(c.cfg.Subsystem, "validation failed on %s: %s", v.Field, v.Message)
		c.notify(notice.Warning, v.Message)
		return OutcomeInvalid
	}
	fields, err := Payload(c.cfg.Schema, c.draft, c.cfg.MethodOverride)
	if err != nil {
		c.mu.Unlock()
		logging.Error(c.cfg.Subsystem, err, "build payload")
		c.notify(notice.Error, c.cfg.FailureText)
		return OutcomeFailed
	}
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	msg, err := c.cfg.Submit(ctx, fields)
	if err != nil {
		if ctx.Err() != nil {
			logging.Debug(c.cfg.Subsystem, "submit abandoned: %v", ctx.Err())
			return OutcomeCancelled
		}
		return c.failure(err)
	}

	if msg == "" {
		msg = c.cfg.SuccessText
	}
	logging.Info(c.cfg.Subsystem, "submit succeeded: %s", msg)
	c.notify(notice.Success, msg)
	if c.cfg.Navigator != nil && c.cfg.ParentRoute != "" {
		c.cfg.Navigator.Navigate(c.cfg.ParentRoute)
	}
	return OutcomeSaved
}

func (c *Controller) failure(err error) Outcome {
	apiErr, ok := api.AsError(err)
	if !ok {
		logging.Warn(c.cfg.Subsystem, "submit failed: %v", err)
		c.notify(notice.Error, c.cfg.FailureText)
		return OutcomeFailed
	}

	logging.Warn(c.cfg.Subsystem, "submit rejected: %v", apiErr)
	switch {
	case apiErr.FirstMessage() != "":
		c.notify(notice.Error, apiErr.FirstMessage())
	case apiErr.Message != "":
		c.notify(notice.Error, apiErr.Message)
	default:
		c.notify(notice.Error, c.cfg.FailureText)
	}
	return OutcomeRejected
}

func (c *Controller) notify(level notice.Level, text string) {
	c.cfg.Notices.Notify(notice.Notice{Level: level, Text: text})
}
