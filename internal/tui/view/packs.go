package view

import (
	"strconv"
	"strings"

	"adminctl/internal/api"
	"adminctl/internal/render"
	"adminctl/internal/tui/components"
	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"
)

func packStatus(p api.Pack) string {
	if api.FlagValue(p.Status, true) {
		return "active"
	}
	return "inactive"
}

func renderPacks(m *model.Model, width int) string {
	list := m.Packs.Packs()
	if len(list) == 0 {
		if m.Packs.Loading() {
			return m.Spinner.View() + " Loading packs…"
		}
		return design.DimStyle.Render("No packs yet. Press n to create one.")
	}

	tbl := components.NewTable(width,
		components.Column{Title: "ID", Width: 5},
		components.Column{Title: "Name"},
		components.Column{Title: "Price", Width: 10},
		components.Column{Title: "Days", Width: 6},
		components.Column{Title: "Status", Width: 9},
	)
	tbl.Cursor = m.PackCursor
	tbl.Styles = map[int]func(string) string{
		4: func(cell string) string {
			return design.GetStateStyle(strings.TrimSpace(cell)).Render(cell)
		},
	}
	for _, p := range list {
		tbl.Rows = append(tbl.Rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name.String(),
			p.Price.String(),
			p.DurationDays.String(),
			packStatus(p),
		})
	}

	var b strings.Builder
	b.WriteString(tbl.Render())
	if m.PackCursor >= 0 && m.PackCursor < len(list) {
		b.WriteString("\n\n")
		b.WriteString(renderPackDetail(list[m.PackCursor], width))
	}
	return b.String()
}

// renderPackDetail shows the description as markdown and the advantages.
func renderPackDetail(p api.Pack, width int) string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render(p.Name.String()))
	if desc := render.Markdown(p.Description.String(), width-4); desc != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(desc, "\n"))
	}
	if adv := p.AdvantageList(); len(adv) > 0 {
		b.WriteString("\n")
		b.WriteString(design.TextSecondaryStyle.Render("Advantages"))
		for _, a := range adv {
			b.WriteString("\n  • " + a)
		}
	}
	return b.String()
}
