package breakpoint

import (
	"context"

	"golang.org/x/term"
)

// Terminal is an Environment backed by a terminal's column count. Each
// column counts as ChPixels wide, so "80ch" matches an 80-column
// terminal and "640px" matches at 80 columns as well.
type Terminal struct {
	*Viewport
	fd        int
	supported bool
	getSize   func(fd int) (width, height int, err error)
}

// NewTerminal returns a terminal environment for fd. When fd is not a
// terminal the environment is unsupported and hooks keep their defaults.
func NewTerminal(fd int) *Terminal {
	t := &Terminal{
		Viewport:  NewViewport(0),
		fd:        fd,
		supported: term.IsTerminal(fd),
		getSize:   term.GetSize,
	}
	if t.supported {
		if cols, _, err := t.getSize(fd); err == nil {
			t.Viewport.width = float64(cols) * ChPixels
		}
	}
	return t
}

// Supported reports whether fd is a terminal.
func (t *Terminal) Supported() bool {
	return t.supported
}

// Columns returns the last known terminal width in columns.
func (t *Terminal) Columns() int {
	return int(t.Width() / ChPixels)
}

// Refresh re-reads the terminal size and notifies listeners when the
// width changed.
func (t *Terminal) Refresh() {
	cols, _, err := t.getSize(t.fd)
	if err != nil {
		return
	}
	width := float64(cols) * ChPixels
	if width == t.Width() {
		return
	}
	t.Resize(width)
}

// Watch refreshes the size on every terminal resize until ctx is done.
func (t *Terminal) Watch(ctx context.Context) error {
	if !t.supported {
		<-ctx.Done()
		return nil
	}
	watchResize(ctx, t.Refresh)
	return nil
}
