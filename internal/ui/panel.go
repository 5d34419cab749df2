package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Truncate shortens s to at most width printable cells, keeping styling intact.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// Panel draws a framed box around lines using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	b := t.Border
	edge := func(s string) string { return t.Muted.Render(s) }

	maxw := 0
	for _, ln := range lines {
		if vw := ansi.StringWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vw := ansi.StringWidth(s); vw < maxw {
			s += strings.Repeat(" ", maxw-vw)
		}
		return s
	}
	fmt.Fprintln(w, edge(b.TopLeft+strings.Repeat(b.Top, maxw+2)+b.TopRight))
	for _, ln := range lines {
		fmt.Fprintln(w, edge(b.Left)+" "+pad(ln)+" "+edge(b.Right))
	}
	fmt.Fprintln(w, edge(b.BottomLeft+strings.Repeat(b.Bottom, maxw+2)+b.BottomRight))
}
