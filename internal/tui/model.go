package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/flashingpumpkin/perkakas/internal/breakpoint"
)

// DesktopBreakpoint is the screen that switches the view panel between
// its desktop and mobile values.
const DesktopBreakpoint = "md"

// View panel values.
const (
	DesktopView = "Desktop view"
	MobileView  = "Mobile view"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Clear     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "older"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "newer"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Model is the bubbletea model for the breakpoint dashboard. Every
// configured screen gets a mounted hook observing a viewport that is
// resized from terminal window size messages.
type Model struct {
	layout Layout

	viewport    *breakpoint.Viewport
	breakpoints *breakpoint.Layout
	hooks       []*breakpoint.Hook
	view        *breakpoint.ValueHook[string]
	wide        *breakpoint.ValueHook[bool]
	unmounts    []func()

	events    *RingBuffer[string]
	log       viewport.Model
	following bool
	columns   int
	ready     bool

	keys   keyMap
	help   help.Model
	styles Styles
}

// NewModel creates a dashboard for screens and mounts its hooks.
// Call Close to unmount them.
func NewModel(screens breakpoint.Screens, theme Theme) (Model, error) {
	vp := breakpoint.NewViewport(0)

	bps, err := breakpoint.New(screens, vp)
	if err != nil {
		return Model{}, err
	}
	dashboard, err := breakpoint.New(breakpoint.Screens{{Name: "wide", MinWidth: WideThreshold}}, vp)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		viewport:    vp,
		breakpoints: bps,
		view:        breakpoint.UseBreakpointValue(bps, DesktopBreakpoint, DesktopView, MobileView),
		wide:        breakpoint.UseBreakpointValue(dashboard, "wide", true, false),
		events:      NewRingBuffer[string](DefaultMaxEvents),
		log:         viewport.New(0, 0),
		following:   true,
		keys:        defaultKeyMap,
		help:        help.New(),
		styles:      GetStyles(theme),
	}

	for _, s := range bps.Screens() {
		hook := bps.UseBreakpoint(s.Name, false)
		m.unmounts = append(m.unmounts, hook.Mount())
		m.hooks = append(m.hooks, hook)

		name := s.Name
		hook.Subscribe(func(match bool) {
			m.events.Push(m.formatEvent(name, match))
		})
	}
	m.unmounts = append(m.unmounts, m.view.Mount(), m.wide.Mount())

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.columns = msg.Width
		m.viewport.Resize(float64(msg.Width) * breakpoint.ChPixels)
		m.layout = CalculateLayout(msg.Width, msg.Height, len(m.hooks), m.wide.Value())
		m.log.Width = max(m.layout.ContentWidth(), 0)
		m.log.Height = max(m.layout.EventsHeight, 0)
		m.help.Width = msg.Width
		m.ready = true
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.events.Clear()
			m.following = true
			m.refreshLog()
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			m.following = m.log.AtBottom()
			return m, cmd
		}
	}

	return m, nil
}

// refreshLog copies the change log into the scrollable panel, staying
// on the newest entry unless the user scrolled back.
func (m *Model) refreshLog() {
	styled := make([]string, 0, m.events.Len())
	for _, event := range m.events.Last(m.events.Len()) {
		styled = append(styled, m.styles.Value.Render(event))
	}
	m.log.SetContent(strings.Join(styled, "\n"))
	if m.following {
		m.log.GotoBottom()
	}
}

// formatEvent renders one change log line.
func (m Model) formatEvent(name string, match bool) string {
	cols := int(m.viewport.Width() / breakpoint.ChPixels)
	if match {
		return fmt.Sprintf("%s %s matched at %d columns", IconUp, name, cols)
	}
	return fmt.Sprintf("%s %s released at %d columns", IconDown, name, cols)
}

// Changes returns how many breakpoint transitions were observed.
func (m Model) Changes() int {
	return m.events.Total()
}

// Columns returns the last terminal width seen.
func (m Model) Columns() int {
	return m.columns
}

// Active returns the screens currently satisfied, in configuration order.
func (m Model) Active() []string {
	var active []string
	for _, h := range m.hooks {
		if h.Match() {
			active = append(active, h.Name())
		}
	}
	return active
}

// Close unmounts every hook. It is safe to call more than once.
func (m Model) Close() {
	for _, unmount := range m.unmounts {
		unmount()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.layout.TooSmall {
		return m.styles.TooSmallMessage.Render(m.layout.TooSmallMessage)
	}

	return m.renderFull()
}

// renderFull renders the complete UI with all panels.
func (m Model) renderFull() string {
	var sections []string

	sections = append(sections, RenderTopBorder(m.layout.Width, m.styles.Border))
	sections = append(sections, m.frameLine(m.renderHeader()))
	sections = append(sections, RenderDoubleBorder(m.layout.Width, m.styles.Border))

	for _, line := range m.renderScreens() {
		sections = append(sections, m.frameLine(line))
	}
	sections = append(sections, RenderDoubleBorder(m.layout.Width, m.styles.Border))

	sections = append(sections, m.frameLine(m.styles.Label.Render("View  ")+m.styles.Value.Render(m.view.Value())))
	sections = append(sections, RenderDoubleBorder(m.layout.Width, m.styles.Border))

	for _, line := range m.renderEvents() {
		sections = append(sections, m.frameLine(line))
	}

	sections = append(sections, RenderBottomBorder(m.layout.Width, m.styles.Border))
	sections = append(sections, m.renderHelpBar())

	return strings.Join(sections, "\n")
}

// frameLine truncates content to the panel width and wraps it in the
// vertical frame borders.
func (m Model) frameLine(content string) string {
	width := m.layout.ContentWidth()
	content = ansi.Truncate(content, width, "…")
	padding := width - ansi.StringWidth(content)
	if padding < 0 {
		padding = 0
	}
	border := m.styles.Border.Render(BoxVertical)
	return border + " " + content + strings.Repeat(" ", padding) + " " + border
}

// renderHeader renders the brand and the current viewport width.
func (m Model) renderHeader() string {
	width := m.layout.ContentWidth()

	brand := IconBrand + " PERKAKAS"
	size := fmt.Sprintf("%d cols %s %gpx", m.columns, InnerVertical, m.viewport.Width())

	padding := width - ansi.StringWidth(brand) - ansi.StringWidth(size)
	if padding < 1 {
		padding = 1
	}

	return m.styles.Brand.Render(brand) + strings.Repeat(" ", padding) + m.styles.Value.Render(size)
}

// renderScreens renders the screens panel: a table when wide, a single
// line of names otherwise.
func (m Model) renderScreens() []string {
	if !m.layout.Wide {
		var parts []string
		for _, h := range m.hooks {
			parts = append(parts, m.renderMatch(h.Match(), h.Name()))
		}
		return []string{strings.Join(parts, "  ")}
	}

	lines := []string{m.styles.Header.Render(fmt.Sprintf("  %-10s %-12s %s", "SCREEN", "MIN WIDTH", "COLUMNS"))}
	for _, h := range m.hooks {
		threshold := m.breakpoints.Threshold(h.Name())
		row := fmt.Sprintf("%-10s ", h.Name()) +
			m.styles.Value.Render(fmt.Sprintf("%-12s ", threshold)) +
			m.styles.Label.Render(thresholdColumns(threshold))
		lines = append(lines, m.renderMatch(h.Match(), row))
	}
	return lines
}

func (m Model) renderMatch(match bool, text string) string {
	if match {
		return m.styles.Match.Render(IconMatch + " " + text)
	}
	return m.styles.NoMatch.Render(IconNoMatch + " " + text)
}

// renderEvents renders the visible part of the change log, padded to
// the panel height.
func (m Model) renderEvents() []string {
	height := m.layout.EventsHeight
	lines := make([]string, 0, height)
	if m.events.Len() == 0 {
		lines = append(lines, m.styles.Label.Render("Resize the terminal to see breakpoint changes."))
	} else {
		lines = append(lines, strings.Split(m.log.View(), "\n")...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// renderHelpBar renders the key help below the main frame.
func (m Model) renderHelpBar() string {
	return "  " + m.help.View(m.keys)
}

// thresholdColumns converts a threshold to the terminal width that satisfies it.
func thresholdColumns(threshold string) string {
	px, err := breakpoint.ParseLength(threshold)
	if err != nil || threshold == breakpoint.NeverMatches {
		return "never"
	}
	cols := int(px / breakpoint.ChPixels)
	if float64(cols)*breakpoint.ChPixels < px {
		cols++
	}
	return fmt.Sprintf(">= %d", cols)
}
