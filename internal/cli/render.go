// Package cli renders report builder output for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"grant-portal/internal/service/builder"
	"grant-portal/internal/storage"
)

var (
	ColorBorder    = lipgloss.Color("#575653")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorRed)
)

// RenderPreview draws the preview table followed by its caption.
func RenderPreview(p builder.Preview) string {
	var b strings.Builder

	if len(p.Columns) > 0 {
		rows := make([][]string, 0, len(p.Rows))
		for _, row := range p.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = FormatValue(v)
			}
			rows = append(rows, cells)
		}

		b.WriteString(newTable(p.Columns, rows).String())
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(p.Caption))
	b.WriteString("\n")

	return b.String()
}

// RenderCatalog lists the selectable fields of one data source.
func RenderCatalog(source storage.DataSource, fields []storage.ReportField) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.ID, f.Label, string(f.Type), f.Table})
	}

	return fmt.Sprintf("%s\n%s\n", headerStyle.Render(string(source)),
		newTable([]string{"Field", "Label", "Type", "Table"}, rows).String())
}

func RenderError(err error) string {
	return errorStyle.Render("error: "+err.Error()) + "\n"
}

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// FormatValue prints a report cell. Whole floats lose their fraction, nil is
// blank.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%.2f", x)
	default:
		return fmt.Sprint(x)
	}
}
