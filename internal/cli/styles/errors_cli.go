package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// ErrorsCLIRenderer renders the error journal listing.
type ErrorsCLIRenderer struct {
	theme *Theme
}

func NewErrorsCLIRenderer(theme *Theme) *ErrorsCLIRenderer {
	return &ErrorsCLIRenderer{theme: theme}
}

func (r *ErrorsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

// RenderRecords renders records as a table with a per-type summary.
func (r *ErrorsCLIRenderer) RenderRecords(path string, records []entity.ErrorRecord) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s Journal %s", iconStyle.Render(IconDatabase), r.theme.Subtle.Render(path))

	if len(records) == 0 {
		return header + "\n\n" + fmt.Sprintf("%s %s",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Normal.Render("No errors recorded"),
		)
	}

	rows := make([]table.Row, 0, len(records))
	counts := make(map[entity.ErrorType]int)
	var order []entity.ErrorType
	for _, rec := range records {
		rows = append(rows, ErrorRow(rec))
		if counts[rec.Type] == 0 {
			order = append(order, rec.Type)
		}
		counts[rec.Type]++
	}

	columns := ErrorTableColumns()
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	// The header and its border take two lines.
	t := NewStyledTable(r.theme, columns, rows, width, len(rows)+2)

	badges := make([]string, 0, len(order))
	for _, typ := range order {
		badges = append(badges, r.theme.MutedBadge(fmt.Sprintf("%s %d", typ, counts[typ])))
	}

	return strings.Join([]string{
		header,
		"",
		t.View(),
		"",
		strings.Join(badges, " "),
	}, "\n")
}
