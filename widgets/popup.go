package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers popup in a bordered card over base. Rows of base that
// the card does not cover stay visible on both sides.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := fitLines(base, width, height)
	card := popupStyle.Render(popup)
	overlay := fitLines(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)

	out := make([]string, height)
	for i := range out {
		start, end, ok := segmentBounds(overlay[i], width)
		if !ok {
			out[i] = baseLines[i]
			continue
		}
		left := ansi.Truncate(baseLines[i], start, "")
		segment := ansi.Truncate(dropColumns(overlay[i], start), end-start, "")
		right := dropColumns(baseLines[i], end)
		out[i] = padRight(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// segmentBounds finds the non-blank column span of line.
func segmentBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(trimmed) && trimmed[start] == ' ' {
		start++
	}
	return start, ansi.StringWidth(trimmed), true
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
