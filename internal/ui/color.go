package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// detected is the profile the terminal reported before any override.
	detected  = lipgloss.ColorProfile()
	colorMode = ColorAuto
)

// SetColorMode overrides terminal detection: always forces at least 256
// colors, never strips them, auto restores what the terminal reported.
func SetColorMode(mode string) error {
	switch m := strings.ToLower(mode); m {
	case "", ColorAuto:
		colorMode = ColorAuto
	case ColorAlways, ColorNever:
		colorMode = m
	default:
		return fmt.Errorf("unknown color mode %q (want %s|%s|%s)", mode, ColorAuto, ColorAlways, ColorNever)
	}
	applyProfile()
	return nil
}

// applyProfile derives the lipgloss profile from the color mode and the theme.
func applyProfile() {
	switch {
	case colorMode == ColorNever || current.Name == "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
	case colorMode == ColorAlways && detected > termenv.ANSI256:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		lipgloss.SetColorProfile(detected)
	}
}

// OK prints a success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render("✔ "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render("✖ "+msg))
}
