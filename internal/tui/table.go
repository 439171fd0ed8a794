package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-xray-viewer/internal/view"
	"github.com/MKhiriev/go-xray-viewer/models"
)

const (
	maxColumnWidth = 22
	columnSep      = " │ "
)

// renderTable draws the rows of p. Rows above the age threshold are
// highlighted, the Gender column is drawn as a badge and the selected sort
// column is underlined.
func renderTable(p view.Projection, state models.ViewState, cursor, sortCol int, th theme) string {
	if len(p.Columns) == 0 {
		return "No data loaded. Press o to open a spreadsheet or u to enter a path or URL."
	}

	widths := columnWidths(p.Columns, p.Rows, state.Sort)

	var b strings.Builder

	header := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		cell := padRight(fitText(c+sortArrow(c, state.Sort), widths[i]), widths[i])
		if i == sortCol {
			header[i] = th.sortColumn.Render(cell)
		} else {
			header[i] = th.header.Render(cell)
		}
	}
	b.WriteString("  ")
	b.WriteString(strings.Join(header, columnSep))
	b.WriteString("\n")

	dividers := make([]string, len(widths))
	for i, w := range widths {
		dividers[i] = strings.Repeat("─", w)
	}
	b.WriteString("  ")
	b.WriteString(strings.Join(dividers, "─┼─"))

	if len(p.Rows) == 0 {
		b.WriteString("\n  No records match the current search.")
		return b.String()
	}

	for i, r := range p.Rows {
		rowStyle := lipgloss.NewStyle()
		switch {
		case i == cursor:
			rowStyle = th.selected
		case view.IsHighlighted(r):
			rowStyle = th.highlighted
		}

		cells := make([]string, len(p.Columns))
		for j, c := range p.Columns {
			cells[j] = renderCell(r, c, widths[j], rowStyle, th)
		}

		marker := "  "
		if i == cursor {
			marker = "> "
		}
		b.WriteString("\n")
		b.WriteString(marker)
		b.WriteString(strings.Join(cells, rowStyle.Render(columnSep)))
	}

	return b.String()
}

func renderCell(r models.Record, column string, width int, rowStyle lipgloss.Style, th theme) string {
	if column == models.ColumnGender {
		if badge, ok := view.GenderBadge(r); ok {
			label := fitText(badge.Label, width)
			return th.badges[badge.Tone].Render(label) + rowStyle.Render(strings.Repeat(" ", width-lipgloss.Width(label)))
		}
	}
	return rowStyle.Render(padRight(fitText(r.Get(column), width), width))
}

func columnWidths(columns []string, rows []models.Record, sort models.SortConfig) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c + sortArrow(c, sort))
		for _, r := range rows {
			widths[i] = max(widths[i], lipgloss.Width(r.Get(c)))
		}
		widths[i] = min(widths[i], maxColumnWidth)
	}
	return widths
}

func sortArrow(column string, sort models.SortConfig) string {
	if sort.Key != column {
		return ""
	}
	if sort.Direction == models.SortDesc {
		return " ▼"
	}
	return " ▲"
}

// pageSummary describes which part of the filtered records is on screen.
func pageSummary(p view.Projection, state models.ViewState) string {
	if p.Total == 0 {
		return "0 records"
	}
	if state.PrintView {
		return fmt.Sprintf("Print view: all %d records", p.Total)
	}

	first := state.Page*state.RowsPerPage + 1
	last := first + len(p.Rows) - 1
	return fmt.Sprintf("Showing %d-%d of %d records │ page %d/%d │ %d per page",
		first, last, p.Total, state.Page+1, p.Pages, state.RowsPerPage)
}
