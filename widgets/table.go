package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tablekit/internal/datatable"
)

const (
	columnGap   = 2
	maxColWidth = 40
)

// Table draws one page of records as a header row plus one line per record.
// Cells come from datatable.CellText, so custom column renderers apply.
type Table[R any] struct {
	Columns datatable.Columns[R]
	Rows    []R
	Sort    datatable.SortConfig
	// Empty is shown instead of rows when there are none.
	Empty string
}

func (t Table[R]) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cols := t.Columns.All()
	if len(cols) == 0 {
		return "No columns"
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
		if t.Sort.ColumnID == c.ID {
			headers[i] += " " + sortArrow(t.Sort.Direction)
		}
	}
	rows := t.Rows
	if len(rows) > height-1 {
		rows = rows[:max(0, height-1)]
	}
	cells := make([][]string, len(rows))
	for r, rec := range rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			cells[r][i] = oneLine(datatable.CellText(c, rec))
		}
	}

	widths := columnWidths(headers, cells, width)
	lines := make([]string, 0, len(rows)+1)

	head := make([]string, len(cols))
	for i, h := range headers {
		style := headerStyle
		if t.Sort.ColumnID == cols[i].ID {
			style = sortedHeader
		}
		head[i] = style.Render(padRight(h, widths[i]))
	}
	lines = append(lines, strings.Join(head, strings.Repeat(" ", columnGap)))

	if len(rows) == 0 && height > 1 {
		empty := t.Empty
		if empty == "" {
			empty = "No records"
		}
		lines = append(lines, dimStyle.Render(ansi.Truncate(empty, width, "…")))
	}
	for _, row := range cells {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = padRight(ansi.Truncate(cell, widths[i], "…"), widths[i])
		}
		lines = append(lines, strings.Join(parts, strings.Repeat(" ", columnGap)))
	}
	return strings.Join(lines, "\n")
}

func sortArrow(d datatable.Direction) string {
	if d == datatable.Descending {
		return "▼"
	}
	return "▲"
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// columnWidths sizes each column to its widest cell, capped, then shrinks the
// widest columns until the row fits in width.
func columnWidths(headers []string, cells [][]string, width int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], ansi.StringWidth(c))
		}
	}
	total := columnGap * (len(widths) - 1)
	for i := range widths {
		widths[i] = max(1, min(widths[i], maxColWidth))
		total += widths[i]
	}
	for total > width {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 1 {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}
