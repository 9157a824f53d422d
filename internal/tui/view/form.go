package view

import (
	"strings"

	"adminctl/internal/form"
	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"
)

func renderForm(m *model.Model) string {
	f := m.Form
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render(f.Title))
	b.WriteString("\n\n")

	if f.Loading {
		b.WriteString(m.Spinner.View() + " Loading…")
		return b.String()
	}

	focused := f.FocusedRow()
	draft := f.Controller.Draft()
	schema := f.Controller.Schema()

	for i, field := range schema.Fields {
		isFocused := focused.Kind == model.RowField && focused.Field.Name == field.Name
		b.WriteString(fieldLabel(field, isFocused))
		if field.Kind == form.Bool {
			b.WriteString(checkbox(draft.Flag(field.Name)))
		} else {
			b.WriteString(f.Fields[i].View())
		}
		b.WriteString("\n")
	}

	if schema.List != nil {
		b.WriteString("\n")
		b.WriteString(design.TextSecondaryStyle.Render(schema.List.Label + " (ctrl+n add, ctrl+d remove)"))
		b.WriteString("\n")
		if len(f.Lines) == 0 {
			b.WriteString(design.DimStyle.Render("  none"))
			b.WriteString("\n")
		}
		for i := range f.Lines {
			marker := "  • "
			if focused.Kind == model.RowLine && focused.Line == i {
				marker = "› • "
			}
			b.WriteString(marker + f.Lines[i].View() + "\n")
		}
	}

	b.WriteString("\n")
	label := "Save"
	if f.Controller.Loading() {
		label = m.Spinner.View() + " Saving…"
	}
	if focused.Kind == model.RowSubmit {
		b.WriteString(design.ButtonStyle.Render(label))
	} else {
		b.WriteString(design.ButtonSecondaryStyle.Render(label))
	}
	b.WriteString("  " + design.DimStyle.Render("ctrl+s save · esc cancel"))
	return b.String()
}

func fieldLabel(f form.Field, focused bool) string {
	label := f.Label
	if f.Required || (f.Positive && !f.Optional) {
		label += " *"
	}
	if focused {
		return design.LabelFocusedStyle.Render(label)
	}
	return design.LabelStyle.Render(label)
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
