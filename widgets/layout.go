package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Text is a static widget.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

// VStack stacks widgets vertically. Heights fixes the height of each widget;
// a zero entry (or a missing Heights) shares the remaining rows evenly.
type VStack struct {
	Widgets []Widget
	Heights []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := make([]int, len(v.Widgets))
	fixed, flex := 0, 0
	for i := range v.Widgets {
		if i < len(v.Heights) && v.Heights[i] > 0 {
			heights[i] = v.Heights[i]
			fixed += heights[i]
			continue
		}
		flex++
	}
	if flex > 0 {
		rest := max(0, height-fixed)
		for i := range heights {
			if heights[i] != 0 {
				continue
			}
			share := rest / flex
			if rest%flex > 0 {
				share++
			}
			heights[i] = share
			rest -= share
			flex--
		}
	}

	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		h := min(heights[i], height-len(lines))
		if h <= 0 {
			break
		}
		lines = append(lines, fitLines(w.Render(width, h), width, h)...)
	}
	return strings.Join(lines, "\n")
}

// fitLines pads or cuts s to exactly h lines of exactly width cells.
func fitLines(s string, width, h int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
