package tui

import (
	"reflect"
	"testing"
)

func TestNewRingBuffer(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{"normal capacity", 100, 100},
		{"zero capacity defaults", 0, DefaultMaxEvents},
		{"negative capacity defaults", -1, DefaultMaxEvents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRingBuffer[string](tt.capacity)
			if rb.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", rb.Cap(), tt.wantCap)
			}
			if rb.Len() != 0 {
				t.Errorf("Len() = %d, want 0 for new buffer", rb.Len())
			}
		})
	}
}

func TestRingBuffer_PushBelowCapacity(t *testing.T) {
	rb := NewRingBuffer[string](5)
	rb.Push("a")
	rb.Push("b")
	rb.Push("c")

	if rb.Len() != 3 {
		t.Errorf("Len() = %d, want 3", rb.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := rb.Get(i); got != want {
			t.Errorf("Get(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestRingBuffer_PushEvictsOldest(t *testing.T) {
	rb := NewRingBuffer[int](3)
	for i := 1; i <= 5; i++ {
		rb.Push(i)
	}

	if rb.Len() != 3 {
		t.Errorf("Len() = %d, want 3", rb.Len())
	}
	if rb.Total() != 5 {
		t.Errorf("Total() = %d, want 5", rb.Total())
	}
	if got := rb.Last(3); !reflect.DeepEqual(got, []int{3, 4, 5}) {
		t.Errorf("Last(3) = %v, want [3 4 5]", got)
	}
}

func TestRingBuffer_GetOutOfRange(t *testing.T) {
	rb := NewRingBuffer[string](2)
	rb.Push("a")

	if got := rb.Get(-1); got != "" {
		t.Errorf("Get(-1) = %q, want empty", got)
	}
	if got := rb.Get(1); got != "" {
		t.Errorf("Get(1) = %q, want empty", got)
	}
}

func TestRingBuffer_Last(t *testing.T) {
	rb := NewRingBuffer[string](10)
	rb.Push("a")
	rb.Push("b")
	rb.Push("c")

	tests := []struct {
		n    int
		want []string
	}{
		{0, nil},
		{2, []string{"b", "c"}},
		{10, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		if got := rb.Last(tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Last(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestRingBuffer_Clear(t *testing.T) {
	rb := NewRingBuffer[string](3)
	rb.Push("a")
	rb.Push("b")
	rb.Clear()

	if rb.Len() != 0 || rb.Total() != 0 {
		t.Errorf("after Clear Len() = %d Total() = %d, want 0 0", rb.Len(), rb.Total())
	}
	rb.Push("c")
	if rb.Get(0) != "c" {
		t.Errorf("Get(0) = %q, want c", rb.Get(0))
	}
}
