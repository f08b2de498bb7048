package breakpoint

import "sync"

// ValueHook resolves one of two candidate values from a breakpoint.
type ValueHook[T comparable] struct {
	hook *Hook

	mu      sync.Mutex
	valid   T
	invalid T

	cached      bool
	memoMatch   bool
	memoValid   T
	memoInvalid T
	result      T
	recomputes  int
}

// UseBreakpointValue returns a hook whose Value is valid while the
// breakpoint matches and invalid otherwise.
func UseBreakpointValue[T comparable](l *Layout, name string, valid, invalid T) *ValueHook[T] {
	return &ValueHook[T]{
		hook:    l.UseBreakpoint(name, false),
		valid:   valid,
		invalid: invalid,
	}
}

// Hook returns the underlying breakpoint hook.
func (v *ValueHook[T]) Hook() *Hook {
	return v.hook
}

// Mount mounts the underlying hook.
func (v *ValueHook[T]) Mount() (unmount func()) {
	return v.hook.Mount()
}

// SetCandidates replaces both candidate values.
func (v *ValueHook[T]) SetCandidates(valid, invalid T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.valid = valid
	v.invalid = invalid
}

// Value returns the resolved value. The result is memoised and only
// recomputed when the match state or either candidate changes.
func (v *ValueHook[T]) Value() T {
	match := v.hook.Match()

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cached && v.memoMatch == match && v.memoValid == v.valid && v.memoInvalid == v.invalid {
		return v.result
	}

	v.recomputes++
	v.cached = true
	v.memoMatch = match
	v.memoValid = v.valid
	v.memoInvalid = v.invalid
	if match {
		v.result = v.valid
	} else {
		v.result = v.invalid
	}
	return v.result
}
