package controller

import (
	"adminctl/internal/tui/model"
	"adminctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model. The first permission fetch is the mount of
// the gated navigation.
func (a AppModel) Init() tea.Cmd {
	return tea.Batch(a.model.Init(), loadPermissions(a.model))
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := mainControllerDispatch(a.model, msg)
	a.model = updatedModel
	if a.model.CurrentAppMode == model.ModeQuitting {
		return a, tea.Quit
	}
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
