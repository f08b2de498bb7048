package breakpoint

import "sync"

type subscriber struct {
	id int
	fn func(bool)
}

// Hook is one observer of a named breakpoint.
type Hook struct {
	layout *Layout
	name   string

	mu      sync.Mutex
	match   bool
	mounted bool
	gen     int
	remove  func()
	subs    []subscriber
	nextID  int
	effects []func(bool)
}

// UseBreakpoint returns a hook reporting defaultValue until it is
// mounted in an environment that supports viewport queries.
func (l *Layout) UseBreakpoint(name string, defaultValue bool) *Hook {
	return &Hook{layout: l, name: name, match: defaultValue}
}

// UseBreakpointEffect returns a hook that calls effect with the current
// match once after Mount and again on every recomputation.
func (l *Layout) UseBreakpointEffect(name string, effect func(match bool)) *Hook {
	h := l.UseBreakpoint(name, false)
	h.effects = append(h.effects, effect)
	return h
}

// Name returns the breakpoint name the hook observes.
func (h *Hook) Name() string {
	return h.name
}

// Match returns the current match state.
func (h *Hook) Match() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.match
}

// Mounted reports whether the hook is between Mount and unmount.
func (h *Hook) Mounted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mounted
}

// Mount activates the hook and returns its unmount function. In a
// supported environment the match is computed immediately and a resize
// listener is installed. Mounting an already mounted hook installs
// nothing new.
func (h *Hook) Mount() (unmount func()) {
	h.mu.Lock()
	if h.mounted {
		h.mu.Unlock()
		return h.Unmount
	}
	h.mounted = true
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	env := h.layout.env
	if !env.Supported() {
		h.runEffects(h.Match())
		return h.Unmount
	}

	remove := env.OnResize(h.recompute)
	h.mu.Lock()
	if !h.mounted || h.gen != gen {
		// Unmounted while the listener was being installed.
		h.mu.Unlock()
		remove()
		return h.Unmount
	}
	h.remove = remove
	h.mu.Unlock()

	h.recompute()
	return h.Unmount
}

// Unmount removes the resize listener. It is safe to call repeatedly.
func (h *Hook) Unmount() {
	h.mu.Lock()
	if !h.mounted {
		h.mu.Unlock()
		return
	}
	h.mounted = false
	remove := h.remove
	h.remove = nil
	h.mu.Unlock()

	if remove != nil {
		remove()
	}
}

// Subscribe registers fn to run whenever the match state changes. It is
// not called for recomputations that leave the state unchanged.
func (h *Hook) Subscribe(fn func(match bool)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

func (h *Hook) recompute() {
	match := h.layout.matches(h.name)

	h.mu.Lock()
	if !h.mounted {
		h.mu.Unlock()
		return
	}
	changed := match != h.match
	h.match = match
	var notify []func(bool)
	if changed {
		for _, s := range h.subs {
			notify = append(notify, s.fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range notify {
		fn(match)
	}
	h.runEffects(match)
}

func (h *Hook) runEffects(match bool) {
	h.mu.Lock()
	effects := make([]func(bool), len(h.effects))
	copy(effects, h.effects)
	h.mu.Unlock()

	for _, effect := range effects {
		effect(match)
	}
}
