package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dark theme colour palette (for dark terminal backgrounds)
const (
	ColourAmber      = lipgloss.Color("214") // #FFB000 - Headers, borders
	ColourAmberDim   = lipgloss.Color("136") // #996600 - Unmatched screens, help
	ColourAmberLight = lipgloss.Color("222") // #FFD966 - Values
	ColourAmberFaded = lipgloss.Color("178") // #B38F00 - Labels
	ColourSuccess    = lipgloss.Color("82")  // #00FF00 - Matched screens
	ColourWarning    = lipgloss.Color("208") // #FFAA00 - Too-small message
)

// Light theme colour palette (for light terminal backgrounds)
const (
	ColourAmberDark      = lipgloss.Color("94")  // #8B6914 - Headers, borders
	ColourAmberDarkDim   = lipgloss.Color("58")  // #5C4A0A - Unmatched screens, help
	ColourAmberDarkMid   = lipgloss.Color("94")  // #6B5A1E - Values
	ColourAmberDarkFaded = lipgloss.Color("101") // #7A6A30 - Labels
	ColourSuccessDark    = lipgloss.Color("22")  // #008000 - Matched screens
	ColourWarningDark    = lipgloss.Color("166") // #CC5500 - Too-small message
)

// Box drawing characters for the UI frame.
const (
	BoxTopLeft     = "╔"
	BoxTopRight    = "╗"
	BoxBottomLeft  = "╚"
	BoxBottomRight = "╝"
	BoxHorizontal  = "═"
	BoxVertical    = "║"
	BoxLeftT       = "╠"
	BoxRightT      = "╣"

	InnerVertical = "│"
)

// Status indicator icons
const (
	IconMatch   = "●"
	IconNoMatch = "○"
	IconUp      = "↑"
	IconDown    = "↓"
	IconBrand   = "◆"
)

// Styles contains all lipgloss styles for the UI.
type Styles struct {
	Border lipgloss.Style

	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style

	Match   lipgloss.Style
	NoMatch lipgloss.Style

	TooSmallMessage lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	Brand lipgloss.Style
}

// DarkStyles returns the amber theme optimised for dark terminal backgrounds.
func DarkStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().Foreground(ColourAmber),

		Header: lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourAmberFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourAmberLight),

		Match:   lipgloss.NewStyle().Foreground(ColourSuccess).Bold(true),
		NoMatch: lipgloss.NewStyle().Foreground(ColourAmberDim),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourWarning).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourAmberDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourAmberFaded),

		Brand: lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),
	}
}

// LightStyles returns the amber theme optimised for light terminal backgrounds.
func LightStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().Foreground(ColourAmberDark),

		Header: lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourAmberDarkMid),

		Match:   lipgloss.NewStyle().Foreground(ColourSuccessDark).Bold(true),
		NoMatch: lipgloss.NewStyle().Foreground(ColourAmberDarkDim),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourWarningDark).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourAmberDarkDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),

		Brand: lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),
	}
}

// GetStyles returns the Styles for the given theme.
// Falls back to dark theme for unknown theme values.
func GetStyles(theme Theme) Styles {
	switch theme {
	case ThemeLight:
		return LightStyles()
	default:
		return DarkStyles()
	}
}

// RenderDoubleBorder renders a horizontal double-line border of the given width.
func RenderDoubleBorder(width int, style lipgloss.Style) string {
	if width <= 2 {
		return style.Render(BoxLeftT + BoxRightT)
	}
	return style.Render(BoxLeftT + strings.Repeat(BoxHorizontal, width-2) + BoxRightT)
}

// RenderTopBorder renders the top border of the frame.
func RenderTopBorder(width int, style lipgloss.Style) string {
	if width <= 2 {
		return style.Render(BoxTopLeft + BoxTopRight)
	}
	return style.Render(BoxTopLeft + strings.Repeat(BoxHorizontal, width-2) + BoxTopRight)
}

// RenderBottomBorder renders the bottom border of the frame.
func RenderBottomBorder(width int, style lipgloss.Style) string {
	if width <= 2 {
		return style.Render(BoxBottomLeft + BoxBottomRight)
	}
	return style.Render(BoxBottomLeft + strings.Repeat(BoxHorizontal, width-2) + BoxBottomRight)
}
