package widgets

import (
	"strconv"
	"strings"

	"github.com/jask/tablekit/internal/datatable"
)

// Pager draws a page navigator: prev/next arrows, first/last jumps when the
// window hides pages, and the page window with the current page marked.
type Pager struct {
	Nav datatable.Navigator
	// Summary is appended after the window, e.g. "41-60 of 212".
	Summary string
}

func (p Pager) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	parts := make([]string, 0, len(p.Nav.Items())+5)
	if p.Nav.ShowEdges() {
		parts = append(parts, button("«", p.Nav.HasPrev()))
	}
	parts = append(parts, button("‹", p.Nav.HasPrev()))
	for _, it := range p.Nav.Items() {
		switch {
		case it.Ellipsis:
			parts = append(parts, dimStyle.Render("…"))
		case it.Page == p.Nav.Page:
			parts = append(parts, currentPageStyle.Render("["+strconv.Itoa(it.Page)+"]"))
		default:
			parts = append(parts, strconv.Itoa(it.Page))
		}
	}
	parts = append(parts, button("›", p.Nav.HasNext()))
	if p.Nav.ShowEdges() {
		parts = append(parts, button("»", p.Nav.HasNext()))
	}
	line := strings.Join(parts, " ")
	if p.Summary != "" {
		line += "  " + dimStyle.Render(p.Summary)
	}
	return padRight(line, width)
}

func button(label string, enabled bool) string {
	if enabled {
		return label
	}
	return dimStyle.Render(label)
}

// Summary formats the "first-last of total" range label for a result.
func Summary(start, end, total int) string {
	if total == 0 {
		return "0 of 0"
	}
	return strconv.Itoa(start+1) + "-" + strconv.Itoa(end) + " of " + strconv.Itoa(total)
}
