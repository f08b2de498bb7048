package tui

// DefaultMaxEvents is the default number of breakpoint changes retained.
const DefaultMaxEvents = 256

// RingBuffer is a fixed-size circular buffer.
// When capacity is reached, new items overwrite the oldest items.
type RingBuffer[T any] struct {
	data  []T
	head  int // index of the oldest item
	count int
	total int // items ever pushed
}

// NewRingBuffer creates a new RingBuffer with the specified capacity.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		capacity = DefaultMaxEvents
	}
	return &RingBuffer[T]{data: make([]T, capacity)}
}

// Push adds an item to the buffer, evicting the oldest if at capacity.
func (rb *RingBuffer[T]) Push(item T) {
	rb.total++
	if rb.count < len(rb.data) {
		rb.data[(rb.head+rb.count)%len(rb.data)] = item
		rb.count++
		return
	}
	rb.data[rb.head] = item
	rb.head = (rb.head + 1) % len(rb.data)
}

// Len returns the number of items in the buffer.
func (rb *RingBuffer[T]) Len() int {
	return rb.count
}

// Cap returns the maximum capacity of the buffer.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.data)
}

// Total returns how many items were pushed since creation or the last Clear,
// including evicted ones.
func (rb *RingBuffer[T]) Total() int {
	return rb.total
}

// Get returns the item at the specified index (0 = oldest).
// Returns the zero value if index is out of range.
func (rb *RingBuffer[T]) Get(index int) T {
	var zero T
	if index < 0 || index >= rb.count {
		return zero
	}
	return rb.data[(rb.head+index)%len(rb.data)]
}

// Last returns up to n of the newest items, ordered oldest to newest.
func (rb *RingBuffer[T]) Last(n int) []T {
	if n > rb.count {
		n = rb.count
	}
	if n <= 0 {
		return nil
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = rb.Get(rb.count - n + i)
	}
	return result
}

// Clear removes all items from the buffer.
func (rb *RingBuffer[T]) Clear() {
	var zero T
	for i := range rb.data {
		rb.data[i] = zero
	}
	rb.head = 0
	rb.count = 0
	rb.total = 0
}
