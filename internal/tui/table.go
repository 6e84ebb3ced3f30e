package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/preflylabs/prefly/internal/constants"
)

// TableColumn defines a column in a table.
type TableColumn struct {
	Name  string
	Width int
}

// Table provides styled, fixed-width table rendering for task lists.
type Table struct {
	w       io.Writer
	columns []TableColumn

	header lipgloss.Style
	status map[constants.TaskStatus]lipgloss.AdaptiveColor
}

// NewTable creates a new table with the given columns.
func NewTable(w io.Writer, columns []TableColumn) *Table {
	return &Table{
		w:       w,
		columns: columns,
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		status: TaskStatusColors(),
	}
}

// WriteHeader writes the table header row.
func (t *Table) WriteHeader() {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += " "
		}
		row += pad(col.Name, col.Width)
	}
	_, _ = fmt.Fprintln(t.w, t.header.Render(row))
}

// WriteRow writes a data row. Values beyond the column count are ignored;
// missing values render empty.
func (t *Table) WriteRow(values ...string) {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += " "
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		row += pad(value, col.Width)
	}
	_, _ = fmt.Fprintln(t.w, row)
}

// WriteTaskRow writes a row whose status cell is colored and iconed.
func (t *Table) WriteTaskRow(status constants.TaskStatus, values ...string) {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += " "
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		cell := pad(value, col.Width)
		if i == statusColumnIndex(t.columns) {
			styled := FormatStatusWithIcon(status, value)
			if color, ok := t.status[status]; ok && HasColorSupport() {
				styled = lipgloss.NewStyle().Foreground(color).Render(styled)
			}
			cell = styled + padding(col.Width-runewidth.StringWidth(value)-2)
		}
		row += cell
	}
	_, _ = fmt.Fprintln(t.w, row)
}

// statusColumnIndex returns the index of the column named "STATUS", or -1.
func statusColumnIndex(columns []TableColumn) int {
	for i, col := range columns {
		if col.Name == "STATUS" {
			return i
		}
	}
	return -1
}

// pad truncates or right-pads a value to the given display width.
func pad(s string, width int) string {
	if width <= 1 {
		return s
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return s + padding(width-runewidth.StringWidth(s))
}

// padding returns n spaces, clamped at zero.
func padding(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
