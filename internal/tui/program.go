package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/flashingpumpkin/perkakas/internal/breakpoint"
)

// Program wraps the tea.Program for lifecycle management.
type Program struct {
	program *tea.Program
	model   Model
}

// New creates the dashboard program for screens. theme is a configured
// theme name; "auto" is resolved against the terminal background.
func New(screens breakpoint.Screens, theme string) (*Program, error) {
	applyColorProfile()

	model, err := NewModel(screens, ResolveTheme(theme))
	if err != nil {
		return nil, err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())

	return &Program{
		program: program,
		model:   model,
	}, nil
}

// Run starts the dashboard. This blocks until the program exits and
// unmounts all hooks before returning.
func (p *Program) Run() error {
	defer p.model.Close()

	final, err := p.program.Run()
	if m, ok := final.(Model); ok {
		p.model = m
	}
	return err
}

// Quit sends a quit message to the program.
func (p *Program) Quit() {
	p.program.Quit()
}

// Changes returns how many breakpoint transitions were observed.
func (p *Program) Changes() int {
	return p.model.Changes()
}

// Columns returns the last terminal width the program saw.
func (p *Program) Columns() int {
	return p.model.Columns()
}

// Active returns the screens matched when the program exited.
func (p *Program) Active() []string {
	return p.model.Active()
}
