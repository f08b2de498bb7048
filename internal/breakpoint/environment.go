package breakpoint

import "sync"

// Environment is the host a layout queries for the viewport width.
type Environment interface {
	// Supported reports whether the host can answer viewport queries.
	// Hooks in an unsupported environment keep their default value.
	Supported() bool

	// Width returns the current viewport width in CSS pixels.
	Width() float64

	// OnResize registers fn to run after every viewport change and
	// returns a function that removes it.
	OnResize(fn func()) (remove func())
}

type listener struct {
	id int
	fn func()
}

// Viewport is an Environment whose width is set by the caller. It backs
// tests, the terminal environment and the TUI, which feed it sizes as
// they learn them.
type Viewport struct {
	mu        sync.Mutex
	width     float64
	listeners []listener
	nextID    int
}

// NewViewport returns a viewport with the given initial width in pixels.
func NewViewport(width float64) *Viewport {
	return &Viewport{width: width}
}

// Supported always reports true.
func (v *Viewport) Supported() bool {
	return true
}

// Width returns the last width passed to Resize.
func (v *Viewport) Width() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// Resize updates the width and notifies listeners in registration order.
// Listeners run on the caller's goroutine, one at a time.
func (v *Viewport) Resize(width float64) {
	v.mu.Lock()
	v.width = width
	fns := make([]func(), len(v.listeners))
	for i, l := range v.listeners {
		fns[i] = l.fn
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// OnResize implements Environment.
func (v *Viewport) OnResize(fn func()) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners = append(v.listeners, listener{id: id, fn: fn})
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			for i, l := range v.listeners {
				if l.id == id {
					v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Listeners returns the number of registered resize listeners.
func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// unsupported is the environment used when none is given.
type unsupported struct{}

func (unsupported) Supported() bool        { return false }
func (unsupported) Width() float64         { return 0 }
func (unsupported) OnResize(func()) func() { return func() {} }
