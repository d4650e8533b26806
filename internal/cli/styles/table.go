package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Bold(false)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// ErrorTableColumns returns columns for the error journal table.
func ErrorTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "When", Width: 10},
		{Title: "Type", Width: 26},
		{Title: "Detail", Width: 60},
	}
}

// ErrorRow converts a journal record to a table row.
func ErrorRow(rec entity.ErrorRecord) table.Row {
	return table.Row{
		strconv.FormatInt(rec.ID, 10),
		RelativeTime(time.UnixMilli(rec.RecordedAt)),
		string(rec.Type),
		rec.Detail,
	}
}
