package ui

import "github.com/muesli/reflow/wordwrap"

// Wrap word-wraps s at width columns.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
