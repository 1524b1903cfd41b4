package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// Clip returns the cells [from, from+width) of a plain-text line. A wide
// rune that would straddle either edge is left out.
func Clip(line string, from, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if col < from {
			col += w
			continue
		}
		if col+w > from+width {
			break
		}
		b.WriteRune(r)
		col += w
	}
	return b.String()
}

// Widest returns the display width of the widest line
func Widest(lines []string) int {
	widest := 0
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	return widest
}

// ExpandTabs replaces tabs with spaces so every rune has a display width
func ExpandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// Fit truncates s to width cells and pads it on the right
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
