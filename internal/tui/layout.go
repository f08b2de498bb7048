// Package tui provides the terminal breakpoint dashboard for perkakas using bubbletea.
package tui

// MinTerminalWidth is the minimum supported terminal width.
const MinTerminalWidth = 40

// MinTerminalHeight is the minimum supported terminal height.
const MinTerminalHeight = 10

// WideThreshold is the dashboard's own breakpoint for the table layout.
const WideThreshold = "100ch"

// Panel heights (number of lines)
const (
	// HeaderPanelHeight is the height of the header panel (brand + width).
	HeaderPanelHeight = 1

	// ViewPanelHeight is the height of the panel showing the value hook.
	ViewPanelHeight = 1

	// HelpBarHeight is the height of the help bar at the bottom (outside main frame).
	HelpBarHeight = 1

	// BorderHeight is the total height used by horizontal borders:
	// top, after header, after screens, after view, bottom.
	BorderHeight = 5
)

// Layout represents the calculated dimensions for each UI region.
type Layout struct {
	Width  int
	Height int

	// Wide selects the table rendering of the screens panel
	Wide bool

	HeaderPanelHeight  int
	ScreensPanelHeight int
	ViewPanelHeight    int

	// EventsHeight is the breakpoint change log below the view panel
	EventsHeight int

	HelpBarHeight int

	TooSmall        bool
	TooSmallMessage string
}

// CalculateLayout computes the layout based on terminal dimensions and
// the number of configured screens.
func CalculateLayout(width, height, screenCount int, wide bool) Layout {
	layout := Layout{
		Width:             width,
		Height:            height,
		Wide:              wide,
		HeaderPanelHeight: HeaderPanelHeight,
		ViewPanelHeight:   ViewPanelHeight,
		HelpBarHeight:     HelpBarHeight,
	}

	if width < MinTerminalWidth {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too narrow. Minimum width: 40 columns."
		return layout
	}

	if height < MinTerminalHeight {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too short. Minimum height: 10 rows."
		return layout
	}

	if wide {
		layout.ScreensPanelHeight = screenCount + 1 // +1 for header
	} else {
		layout.ScreensPanelHeight = 1
	}

	fixedHeight := layout.HeaderPanelHeight + layout.ScreensPanelHeight + layout.ViewPanelHeight + layout.HelpBarHeight + BorderHeight
	layout.EventsHeight = height - fixedHeight

	// Fall back to the single-line screens panel before giving up
	if layout.EventsHeight < 1 && wide {
		layout.Wide = false
		layout.ScreensPanelHeight = 1
		fixedHeight = layout.HeaderPanelHeight + layout.ScreensPanelHeight + layout.ViewPanelHeight + layout.HelpBarHeight + BorderHeight
		layout.EventsHeight = height - fixedHeight
	}

	if layout.EventsHeight < 1 {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too short to display breakpoints."
		return layout
	}

	return layout
}

// ContentWidth returns the usable width inside panels (accounting for borders
// and one space of padding on each side).
func (l Layout) ContentWidth() int {
	return l.Width - 4
}
