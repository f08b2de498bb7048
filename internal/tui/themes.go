package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme represents the colour theme for the dashboard.
type Theme string

const (
	// ThemeAuto detects the terminal background colour at startup.
	ThemeAuto Theme = "auto"
	// ThemeDark uses the bright amber palette designed for dark backgrounds.
	ThemeDark Theme = "dark"
	// ThemeLight uses darker colours designed for light backgrounds.
	ThemeLight Theme = "light"
)

// DetectTheme queries the terminal to determine if it has a dark or light background.
// Falls back to ThemeDark if detection fails.
func DetectTheme() Theme {
	output := termenv.NewOutput(os.Stdout)
	if output.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// ResolveTheme converts a configured theme name to a concrete theme.
// "auto" and unknown names are resolved by detection.
func ResolveTheme(configured string) Theme {
	switch Theme(configured) {
	case ThemeDark, ThemeLight:
		return Theme(configured)
	default:
		return DetectTheme()
	}
}

// ValidTheme checks if the given string is a valid theme name.
func ValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeAuto, ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// applyColorProfile downgrades lipgloss to plain text when NO_COLOR is set.
func applyColorProfile() {
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
