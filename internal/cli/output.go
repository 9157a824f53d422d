// Package cli holds the output and prompt helpers shared by the adminctl
// subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes command results in the selected format.
type Printer struct {
	Format OutputFormat
	Quiet  bool
	Out    io.Writer
}

// NewPrinter creates a printer writing to stdout.
func NewPrinter(format OutputFormat, quiet bool) *Printer {
	return &Printer{Format: format, Quiet: quiet, Out: os.Stdout}
}

// Table is a titled grid for table output.
type Table struct {
	Header []string
	Rows   [][]any
}

// Print writes v as JSON or YAML, or renders tbl in table mode.
func (p *Printer) Print(v any, tbl Table) error {
	switch p.Format {
	case OutputFormatJSON:
		return p.outputJSON(v)
	case OutputFormatYAML:
		return p.outputYAML(v)
	case OutputFormatTable, "":
		p.outputTable(tbl)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

// PrintKeyValue writes an object; in table mode as property/value pairs
// in the given order.
func (p *Printer) PrintKeyValue(v any, keys []string, values map[string]any) error {
	if p.Format != OutputFormatTable && p.Format != "" {
		return p.Print(v, Table{})
	}
	t := p.newWriter()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	for _, key := range keys {
		t.AppendRow(table.Row{text.FgYellow.Sprint(key), FormatCell(key, values[key])})
	}
	t.Render()
	return nil
}

// Infof prints a human message unless quiet or a machine format is set.
func (p *Printer) Infof(format string, args ...any) {
	if p.Quiet || (p.Format != OutputFormatTable && p.Format != "") {
		return
	}
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(p.Out, string(data))
	return nil
}

// outputYAML goes through JSON so the json field names are kept.
func (p *Printer) outputYAML(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	yamlData, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	fmt.Fprint(p.Out, string(yamlData))
	return nil
}

func (p *Printer) outputTable(tbl Table) {
	if len(tbl.Rows) == 0 {
		if !p.Quiet {
			fmt.Fprintln(p.Out, text.FgYellow.Sprint("No items found"))
		}
		return
	}
	t := p.newWriter()
	headers := make(table.Row, len(tbl.Header))
	for i, h := range tbl.Header {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(h))
	}
	t.AppendHeader(headers)
	for _, row := range tbl.Rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			col := ""
			if i < len(tbl.Header) {
				col = tbl.Header[i]
			}
			cells[i] = FormatCell(col, cell)
		}
		t.AppendRow(cells)
	}
	t.Render()
}

func (p *Printer) newWriter() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

// FormatCell styles one value by column name.
func FormatCell(column string, value any) any {
	if value == nil {
		return text.FgHiBlack.Sprint("-")
	}
	strValue := fmt.Sprintf("%v", value)
	if strValue == "" {
		return text.FgHiBlack.Sprint("-")
	}

	switch strings.ToLower(column) {
	case "status", "active":
		return formatStatus(strValue)
	case "description":
		return formatDescription(strValue)
	default:
		return strValue
	}
}

func formatStatus(status string) any {
	switch strings.ToLower(status) {
	case "active", "true", "yes":
		return text.FgGreen.Sprint("● " + status)
	case "inactive", "false", "no":
		return text.FgRed.Sprint("○ " + status)
	default:
		return status
	}
}

func formatDescription(desc string) any {
	desc = strings.Join(strings.Fields(desc), " ")
	if len([]rune(desc)) <= 50 {
		return desc
	}
	return string([]rune(desc)[:45]) + text.FgHiBlack.Sprint("...")
}
