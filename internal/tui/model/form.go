package model

import (
	"sync"

	"adminctl/internal/form"

	"github.com/charmbracelet/bubbles/textinput"
)

// FormKind names the entity a form edits.
type FormKind int

const (
	FormPack FormKind = iota
	FormAdmin
)

// RouteRecorder is the navigator handed to form controllers. Submit runs on
// a command goroutine, so the requested route is recorded and applied by the
// program loop when the result message arrives.
type RouteRecorder struct {
	mu    sync.Mutex
	route string
}

// Navigate records route.
func (r *RouteRecorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.route = route
}

// Take returns and clears the recorded route.
func (r *RouteRecorder) Take() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	route := r.route
	r.route = ""
	return route
}

// RowKind distinguishes the focusable rows of a form.
type RowKind int

const (
	RowField RowKind = iota
	RowLine
	RowSubmit
)

// Row is one focusable line of the form.
type Row struct {
	Kind  RowKind
	Field form.Field
	Line  int
}

// FormState is the open create or edit form.
type FormState struct {
	Kind       FormKind
	Title      string
	EntityID   int64
	Controller *form.Controller
	Route      *RouteRecorder

	// Fields is aligned with the schema; entries for boolean fields are
	// unused.
	Fields []textinput.Model
	Lines  []textinput.Model
	Focus  int

	// Loading is true while an edit form waits for its entity.
	Loading bool
}

// NewFormState builds inputs from the controller's draft.
func NewFormState(kind FormKind, title string, id int64, ctrl *form.Controller, route *RouteRecorder) *FormState {
	f := &FormState{
		Kind:       kind,
		Title:      title,
		EntityID:   id,
		Controller: ctrl,
		Route:      route,
	}
	f.Reload()
	return f
}

// Editing reports whether the form updates an existing entity.
func (f *FormState) Editing() bool { return f.EntityID > 0 }

// Reload rebuilds every input from the controller's draft.
func (f *FormState) Reload() {
	draft := f.Controller.Draft()
	schema := f.Controller.Schema()

	f.Fields = make([]textinput.Model, len(schema.Fields))
	for i, field := range schema.Fields {
		if field.Kind == form.Bool {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 512
		ti.Placeholder = field.Label
		if field.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		ti.SetValue(draft.Value(field.Name))
		f.Fields[i] = ti
	}
	f.ReloadLines()
}

// ReloadLines rebuilds the list inputs after a line was added or removed.
func (f *FormState) ReloadLines() {
	f.Lines = nil
	if f.Controller.Schema().List == nil {
		f.clampFocus()
		return
	}
	for _, v := range f.Controller.Draft().List() {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.SetValue(v)
		f.Lines = append(f.Lines, ti)
	}
	f.clampFocus()
}

// Rows lists the focusable rows in display order.
func (f *FormState) Rows() []Row {
	schema := f.Controller.Schema()
	rows := make([]Row, 0, len(schema.Fields)+len(f.Lines)+1)
	for _, field := range schema.Fields {
		rows = append(rows, Row{Kind: RowField, Field: field})
	}
	for i := range f.Lines {
		rows = append(rows, Row{Kind: RowLine, Line: i})
	}
	return append(rows, Row{Kind: RowSubmit})
}

// FocusedRow returns the row holding the cursor.
func (f *FormState) FocusedRow() Row {
	rows := f.Rows()
	return rows[f.Focus]
}

// FieldIndex returns the schema index of name, or -1.
func (f *FormState) FieldIndex(name string) int {
	for i, field := range f.Controller.Schema().Fields {
		if field.Name == name {
			return i
		}
	}
	return -1
}

// MoveFocus moves the cursor by delta rows, wrapping at both ends.
func (f *FormState) MoveFocus(delta int) {
	n := len(f.Rows())
	f.Focus = ((f.Focus+delta)%n + n) % n
	f.applyFocus()
}

// FocusLine puts the cursor on list line i.
func (f *FormState) FocusLine(i int) {
	for idx, row := range f.Rows() {
		if row.Kind == RowLine && row.Line == i {
			f.Focus = idx
			break
		}
	}
	f.applyFocus()
}

func (f *FormState) clampFocus() {
	n := len(f.Rows())
	if f.Focus >= n {
		f.Focus = n - 1
	}
	if f.Focus < 0 {
		f.Focus = 0
	}
	f.applyFocus()
}

func (f *FormState) applyFocus() {
	for i := range f.Fields {
		f.Fields[i].Blur()
	}
	for i := range f.Lines {
		f.Lines[i].Blur()
	}
	row := f.FocusedRow()
	switch row.Kind {
	case RowField:
		if row.Field.Kind == form.Bool {
			return
		}
		if i := f.FieldIndex(row.Field.Name); i >= 0 {
			f.Fields[i].Focus()
		}
	case RowLine:
		f.Lines[row.Line].Focus()
	}
}
