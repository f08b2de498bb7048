// Package breakpoint tracks whether a viewport satisfies named
// minimum-width thresholds.
//
// A Layout is built once from an ordered set of screens and an
// Environment. Hooks created from it follow an explicit lifecycle: Mount
// computes the current match and subscribes to viewport changes, and the
// returned function unsubscribes. Each hook owns its match state; the
// screens are shared read-only between all hooks of one layout.
package breakpoint

import (
	"fmt"

	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
)

// Layout produces breakpoint hooks for a fixed set of screens.
type Layout struct {
	screens Screens
	env     Environment
}

// New builds a Layout. It fails with ErrInvalidScreens when screens is
// empty. Thresholds are not validated here; a malformed threshold simply
// never matches. A nil env behaves as a host without viewport queries.
func New(screens Screens, env Environment) (*Layout, error) {
	if len(screens) == 0 {
		return nil, fmt.Errorf("failed to create breakpoint hooks, given screens value is invalid: %w", perrors.ErrInvalidScreens)
	}
	if env == nil {
		env = unsupported{}
	}

	owned := make(Screens, len(screens))
	copy(owned, screens)
	return &Layout{screens: owned, env: env}, nil
}

// Screens returns a copy of the configured screens.
func (l *Layout) Screens() Screens {
	out := make(Screens, len(l.screens))
	copy(out, l.screens)
	return out
}

// Threshold returns the min-width configured for name, or NeverMatches
// for an unknown name. Unknown names never match regardless of width.
func (l *Layout) Threshold(name string) string {
	if width, ok := l.screens.Lookup(name); ok {
		return width
	}
	return NeverMatches
}

// Match reports whether the viewport currently satisfies name. It
// returns false when the environment cannot answer viewport queries.
func (l *Layout) Match(name string) bool {
	if !l.env.Supported() {
		return false
	}
	return l.matches(name)
}

// Active returns the names of all screens the viewport satisfies, in
// configuration order.
func (l *Layout) Active() []string {
	var active []string
	for _, s := range l.screens {
		if l.Match(s.Name) {
			active = append(active, s.Name)
		}
	}
	return active
}

func (l *Layout) matches(name string) bool {
	width, ok := l.screens.Lookup(name)
	if !ok {
		return false
	}
	px, err := ParseLength(width)
	if err != nil {
		return false
	}
	return l.env.Width() >= px
}
