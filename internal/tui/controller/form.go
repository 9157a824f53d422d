package controller

import (
	"fmt"

	"adminctl/internal/admins"
	"adminctl/internal/form"
	"adminctl/internal/packs"
	"adminctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// openPackForm shows the create form (id 0) or the edit form for id. The
// form becomes the mounted view, so the list request in flight is cancelled.
func openPackForm(m *model.Model, id int64) tea.Cmd {
	route := &model.RouteRecorder{}
	var ctrl *form.Controller
	title := "New pack"
	if id == 0 {
		ctrl = packs.NewCreateForm(m.Client, m.Notices, route)
	} else {
		ctrl = packs.NewEditForm(m.Client, id, m.Notices, route)
		title = fmt.Sprintf("Edit pack #%d", id)
	}
	m.Form = model.NewFormState(model.FormPack, title, id, ctrl, route)
	m.CurrentAppMode = model.ModeForm

	ctx, gen := m.Remount()
	if id == 0 {
		return nil
	}
	m.Form.Loading = true
	return loadPackFormCmd(ctx, gen, m, m.Form)
}

// openAdminForm is openPackForm for administrator accounts.
func openAdminForm(m *model.Model, id int64) tea.Cmd {
	route := &model.RouteRecorder{}
	var ctrl *form.Controller
	title := "New administrator"
	if id == 0 {
		ctrl = admins.NewCreateForm(m.Client, m.Notices, route)
	} else {
		ctrl = admins.NewEditForm(m.Client, id, m.Notices, route)
		title = fmt.Sprintf("Edit administrator #%d", id)
	}
	m.Form = model.NewFormState(model.FormAdmin, title, id, ctrl, route)
	m.CurrentAppMode = model.ModeForm

	ctx, gen := m.Remount()
	if id == 0 {
		return nil
	}
	m.Form.Loading = true
	return loadAdminFormCmd(ctx, gen, m, m.Form)
}

// closeForm drops the form and remounts the panel underneath it, which
// also abandons a load or submit still running.
func closeForm(m *model.Model) tea.Cmd {
	m.Form = nil
	m.CurrentAppMode = model.ModeMain
	return mountActivePanel(m)
}

func handleFormKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	f := m.Form
	if f == nil {
		m.CurrentAppMode = model.ModeMain
		return m, nil
	}

	if key.Matches(keyMsg, m.Keys.Esc) {
		return m, closeForm(m)
	}
	if f.Loading {
		return m, nil
	}

	row := f.FocusedRow()
	switch {
	case key.Matches(keyMsg, m.Keys.Submit):
		return m, submitForm(m)
	case keyMsg.Type == tea.KeyEnter:
		if row.Kind == model.RowSubmit {
			return m, submitForm(m)
		}
		f.MoveFocus(1)
		return m, nil
	case keyMsg.Type == tea.KeyTab, keyMsg.Type == tea.KeyDown:
		f.MoveFocus(1)
		return m, nil
	case keyMsg.Type == tea.KeyShiftTab, keyMsg.Type == tea.KeyUp:
		f.MoveFocus(-1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.AddLine):
		if f.Controller.Schema().List == nil {
			return m, nil
		}
		f.Controller.AddAdvantage()
		f.ReloadLines()
		f.FocusLine(len(f.Lines) - 1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.RemoveLine):
		if row.Kind == model.RowLine && f.Controller.RemoveAdvantage(row.Line) {
			f.ReloadLines()
		}
		return m, nil
	}

	switch row.Kind {
	case model.RowField:
		if row.Field.Kind == form.Bool {
			if key.Matches(keyMsg, m.Keys.ToggleChecked) {
				next := !f.Controller.Draft().Flag(row.Field.Name)
				if err := f.Controller.UpdateField(row.Field.Name, next); err != nil {
					LogError(tuiSubsystem, err, "toggle %s", row.Field.Name)
				}
			}
			return m, nil
		}
		i := f.FieldIndex(row.Field.Name)
		var cmd tea.Cmd
		f.Fields[i], cmd = f.Fields[i].Update(keyMsg)
		if err := f.Controller.UpdateField(row.Field.Name, f.Fields[i].Value()); err != nil {
			LogError(tuiSubsystem, err, "update %s", row.Field.Name)
		}
		return m, cmd
	case model.RowLine:
		var cmd tea.Cmd
		f.Lines[row.Line], cmd = f.Lines[row.Line].Update(keyMsg)
		f.Controller.UpdateAdvantage(row.Line, f.Lines[row.Line].Value())
		return m, cmd
	}
	return m, nil
}

// submitForm runs the controller's submit under the current mount. The
// controller validates first, so an invalid draft never reaches the API.
func submitForm(m *model.Model) tea.Cmd {
	if m.Form == nil || m.Form.Controller.Loading() {
		return nil
	}
	ctx, gen := m.MountContext()
	return submitFormCmd(ctx, gen, m.Form)
}
