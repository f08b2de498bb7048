package util

import "testing"

func TestCompose(t *testing.T) {
	addTwo := func(x int) int { return x + 2 }
	multiplyByThree := func(x int) int { return x * 3 }
	subtractFive := func(x int) int { return x - 5 }

	tests := []struct {
		name     string
		fns      []func(int) int
		input    int
		expected int
	}{
		{"two functions", []func(int) int{multiplyByThree, addTwo}, 5, 17},
		{"three functions", []func(int) int{multiplyByThree, subtractFive, addTwo}, 10, 27},
		{"single function", []func(int) int{func(x int) int { return x }}, 42, 42},
		{"no functions", nil, 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.fns...)(tt.input)
			if got != tt.expected {
				t.Errorf("Compose(...)(%d) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompose_Strings(t *testing.T) {
	identity := func(s string) string { return s }
	if got := Compose(identity, identity)("Hello"); got != "Hello" {
		t.Errorf("Compose(identity, identity)(\"Hello\") = %q, want %q", got, "Hello")
	}
}
