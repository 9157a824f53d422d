package view

import (
	"context"
	"testing"

	"adminctl/internal/api"
	"adminctl/internal/navigation"
	"adminctl/internal/packs"
	"adminctl/internal/permission"
	"adminctl/internal/session"
	"adminctl/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntries = []permission.Entry{
	{Name: "Packs", Panel: model.PanelPacks},
	{Name: "Administrators", Panel: model.PanelAdmins},
	{Name: "Settings", Panel: model.PanelSettings},
}

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	sess := session.New("", true)
	client := api.New("http://backend.test", sess)
	m := model.InitialModel(context.Background(), model.TUIConfig{
		Session: sess,
		Client:  client,
		Entries: testEntries,
	}, nil)
	m.Width, m.Height = 120, 40
	m.Viewport.Resize(m.Width)
	return m
}

func TestRender_Initializing(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, Render(m), "Resolving permissions")
}

func TestRender_Quitting(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye."
	assert.Equal(t, "Goodbye.\n", Render(m))
}

func TestRender_EmptyTabsShowNoAccess(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeMain
	m.Tabs.SetVisible(nil)

	out := Render(m)
	assert.Contains(t, out, "no access")
	assert.NotContains(t, out, "1 Packs")
}

func TestRender_WindowedTabBar(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeMain
	m.Tabs.SetVisible(testEntries)
	require.Equal(t, navigation.ModeWindowed, m.Viewport.Mode())

	_, _, total := TabLayout(testEntries)
	m.Strip.Resize(total, StripWidth(m.Width))

	out := Render(m)
	assert.Contains(t, out, "1 Packs")
	assert.Contains(t, out, "2 Administrators")
	assert.Contains(t, out, "3 Settings")
}

func TestRender_PagerTabBar(t *testing.T) {
	m := newTestModel(t)
	m.Width = 60
	m.Viewport.Resize(m.Width)
	require.Equal(t, navigation.ModePager, m.Viewport.Mode())

	m.CurrentAppMode = model.ModeMain
	m.Tabs.SetVisible(testEntries)
	m.Tabs.Jump(1)

	out := renderTabBar(m)
	assert.Contains(t, out, "Administrators")
	assert.Contains(t, out, "2 / 3")
	assert.Contains(t, out, "‹")
	assert.Contains(t, out, "›")
	assert.NotContains(t, out, "Packs")
}

func TestTabLayout(t *testing.T) {
	starts, ends, total := TabLayout(testEntries)
	require.Len(t, starts, 3)
	assert.Equal(t, 0, starts[0])
	// "1 Packs" plus padding
	assert.Equal(t, 9, ends[0])
	assert.Equal(t, ends[0]+tabGap, starts[1])
	assert.Equal(t, ends[2], total)
}

func TestRenderStrip_HidesTabsOutsideWindow(t *testing.T) {
	tabs := navigation.NewTabs()
	tabs.SetVisible(testEntries)
	_, ends, total := TabLayout(testEntries)

	width := ends[0] + 2*arrowCells
	var strip navigation.Strip
	strip.Resize(total, StripWidth(width))

	out := renderStrip(tabs, strip, width)
	assert.Contains(t, out, "1 Packs")
	assert.NotContains(t, out, "Administrators")
	assert.Contains(t, out, "›")
	assert.NotContains(t, out, "‹")
}

func TestStripWidth(t *testing.T) {
	assert.Equal(t, 96, StripWidth(100))
	assert.Equal(t, 1, StripWidth(2))
}

func TestRenderForm_CreatePack(t *testing.T) {
	m := newTestModel(t)
	route := &model.RouteRecorder{}
	ctrl := packs.NewCreateForm(m.Client, m.Notices, route)
	m.Form = model.NewFormState(model.FormPack, "New pack", 0, ctrl, route)
	m.CurrentAppMode = model.ModeForm

	out := Render(m)
	assert.Contains(t, out, "New pack")
	assert.Contains(t, out, "Name *")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Save")
	assert.NotContains(t, out, "CDF price")
}

func TestRenderForm_LoadingShowsSpinnerOnly(t *testing.T) {
	m := newTestModel(t)
	route := &model.RouteRecorder{}
	ctrl := packs.NewEditForm(m.Client, 3, m.Notices, route)
	m.Form = model.NewFormState(model.FormPack, "Edit pack #3", 3, ctrl, route)
	m.Form.Loading = true

	out := renderForm(m)
	assert.Contains(t, out, "Loading")
	assert.NotContains(t, out, "Save")
}

func TestLogContent(t *testing.T) {
	m := newTestModel(t)
	m.ActivityLog = []string{"a [INFO] one", "b [ERROR] two"}
	out := LogContent(m)
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
}

func TestRenderSettings_Client(t *testing.T) {
	m := newTestModel(t)
	m.BaseURL = "http://backend.test"
	m.SettingsTabs.Jump(2)

	out := renderSettings(m)
	assert.Contains(t, out, "http://backend.test")
	assert.Contains(t, out, "windowed at 120 columns")
}
