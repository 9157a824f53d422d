package view

import (
	"fmt"
	"strconv"
	"strings"

	"adminctl/internal/admins"
	"adminctl/internal/tui/components"
	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"
)

func renderAdmins(m *model.Model, width int) string {
	list := m.Admins.Admins()
	if len(list) == 0 {
		if m.Admins.Loading() {
			return m.Spinner.View() + " Loading administrators…"
		}
		return design.DimStyle.Render("No administrators. Press n to create one.")
	}

	tbl := components.NewTable(width,
		components.Column{Title: "ID", Width: 5},
		components.Column{Title: "Name"},
		components.Column{Title: "E-mail", Width: 28},
		components.Column{Title: "Status", Width: 9},
	)
	tbl.Cursor = m.AdminCursor
	tbl.Styles = map[int]func(string) string{
		3: func(cell string) string {
			return design.GetStateStyle(strings.TrimSpace(cell)).Render(cell)
		},
	}
	for _, a := range list {
		name := a.Name
		if a.IsSuperAdmin {
			name += " ★"
		}
		tbl.Rows = append(tbl.Rows, []string{strconv.FormatInt(a.ID, 10), name, a.Email, a.StatusLabel()})
	}

	return renderAdminStats(m.Admins.Stats()) + "\n\n" + tbl.Render()
}

func renderAdminStats(s admins.Stats) string {
	return fmt.Sprintf("%s %d  %s %d  %s %d  %s %d%%",
		design.TextSecondaryStyle.Render("Active"), s.Active,
		design.TextSecondaryStyle.Render("Inactive"), s.Inactive,
		design.TextSecondaryStyle.Render("Total"), s.Total,
		design.TextSecondaryStyle.Render("Activity"), s.ActivityRate)
}

func renderConfirmOverlay(m *model.Model) string {
	c, ok := m.Admins.Pending()
	if !ok {
		return ""
	}
	var name string
	if a, found := m.Admins.Find(c.TargetID); found {
		name = a.Name
	}
	body := design.TitleStyle.Render("Please confirm") + "\n" +
		c.Question(name) + "\n\n" +
		design.ButtonStyle.Render("y confirm") + " " + design.ButtonSecondaryStyle.Render("n cancel")
	return design.ConfirmOverlayStyle.Render(body)
}
