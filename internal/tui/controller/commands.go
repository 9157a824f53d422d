package controller

import (
	"context"

	"adminctl/internal/admins"
	"adminctl/internal/packs"
	"adminctl/internal/permission"
	"adminctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// loadPermissions refetches the permission set under a fresh mount. Every
// refetch closes the previous scope so late list results are dropped.
func loadPermissions(m *model.Model) tea.Cmd {
	ctx, gen := m.Remount()
	m.Tabs.BeginRefetch()
	return fetchPermissionsCmd(ctx, gen, m.Resolver)
}

func fetchPermissionsCmd(ctx context.Context, gen uint64, r *permission.Resolver) tea.Cmd {
	return func() tea.Msg {
		return model.PermissionsLoadedMsg{Gen: gen, Set: r.Fetch(ctx)}
	}
}

func fetchPacksCmd(ctx context.Context, gen uint64, l *packs.List) tea.Cmd {
	return func() tea.Msg {
		return model.PacksFetchedMsg{Gen: gen, Err: l.Fetch(ctx)}
	}
}

func fetchAdminsCmd(ctx context.Context, gen uint64, l *admins.List) tea.Cmd {
	return func() tea.Msg {
		return model.AdminsFetchedMsg{Gen: gen, Err: l.FetchList(ctx)}
	}
}

func confirmAdminCmd(ctx context.Context, gen uint64, l *admins.List) tea.Cmd {
	return func() tea.Msg {
		return model.AdminMutationMsg{Gen: gen, Err: l.Confirm(ctx)}
	}
}

func submitFormCmd(ctx context.Context, gen uint64, f *model.FormState) tea.Cmd {
	return func() tea.Msg {
		outcome := f.Controller.Submit(ctx)
		return model.FormSubmittedMsg{Gen: gen, Outcome: outcome, Route: f.Route.Take()}
	}
}

func loadPackFormCmd(ctx context.Context, gen uint64, m *model.Model, f *model.FormState) tea.Cmd {
	client, sink := m.Client, m.Notices
	return func() tea.Msg {
		err := packs.Load(ctx, client, f.EntityID, f.Controller, sink)
		return model.FormLoadedMsg{Gen: gen, Err: err}
	}
}

func loadAdminFormCmd(ctx context.Context, gen uint64, m *model.Model, f *model.FormState) tea.Cmd {
	client, sink := m.Client, m.Notices
	return func() tea.Msg {
		err := admins.Load(ctx, client, f.EntityID, f.Controller, sink)
		return model.FormLoadedMsg{Gen: gen, Err: err}
	}
}

// mountActivePanel opens a new scope for the selected tab and starts its
// initial fetch. The previous panel's outstanding request is cancelled.
func mountActivePanel(m *model.Model) tea.Cmd {
	ctx, gen := m.Remount()
	panel := m.ActivePanel()
	LogDebug(m, tuiSubsystem, "mount %q (generation %d)", panel, gen)

	switch panel {
	case model.PanelPacks:
		return fetchPacksCmd(ctx, gen, m.Packs)
	case model.PanelAdmins:
		return fetchAdminsCmd(ctx, gen, m.Admins)
	default:
		return nil
	}
}
