package components

import (
	"strings"

	"adminctl/internal/tui/design"
	"adminctl/internal/tui/utils"
)

// Column is one table column. Width is in terminal cells; a zero width
// column takes the space left over.
type Column struct {
	Title string
	Width int
}

// Table renders rows of plain text cells with a highlighted cursor row.
type Table struct {
	Columns []Column
	Rows    [][]string
	Cursor  int
	Width   int
	// Styles colours single cells, keyed by column index. It receives the
	// padded cell text.
	Styles map[int]func(cell string) string
}

// NewTable creates a table of the given width.
func NewTable(width int, columns ...Column) *Table {
	return &Table{Columns: columns, Width: width, Cursor: -1}
}

// widths resolves the flexible column and clamps to the table width.
func (t *Table) widths() []int {
	out := make([]int, len(t.Columns))
	fixed, flex := 0, -1
	for i, c := range t.Columns {
		out[i] = c.Width
		if c.Width == 0 && flex < 0 {
			flex = i
		}
		fixed += c.Width + 1
	}
	if flex >= 0 {
		rest := t.Width - fixed - 2
		if rest < 4 {
			rest = 4
		}
		out[flex] = rest
	}
	return out
}

// Render returns the header line followed by one line per row.
func (t *Table) Render() string {
	widths := t.widths()
	var b strings.Builder

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = utils.PadRight(c.Title, widths[i])
	}
	b.WriteString("  " + design.TableHeaderStyle.Render(strings.Join(header, " ")))

	for r, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			var v string
			if i < len(row) {
				v = row[i]
			}
			cell := utils.PadRight(v, widths[i])
			if style, ok := t.Styles[i]; ok && style != nil {
				cell = style(cell)
			}
			cells[i] = cell
		}
		line := strings.Join(cells, " ")
		b.WriteString("\n")
		if r == t.Cursor {
			b.WriteString(design.ListItemSelectedStyle.Render("› ") + line)
		} else {
			b.WriteString("  " + line)
		}
	}
	return b.String()
}
