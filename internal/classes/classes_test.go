package classes

import "testing"

func TestClsx(t *testing.T) {
	tests := []struct {
		name     string
		input    []any
		expected string
	}{
		{"strings", []any{"class1", "class2", "class3"}, "class1 class2 class3"},
		{"skips empty values", []any{"class1", "", "class2", nil, false, "class3"}, "class1 class2 class3"},
		{"string slice", []any{[]string{"class1", "class2", "class3"}}, "class1 class2 class3"},
		{"map", []any{map[string]bool{"class4": true, "class5": false, "class6": true}}, "class4 class6"},
		{"nested any slice", []any{[]any{"a", []any{"b", nil}}, "c"}, "a b c"},
		{"numbers", []any{0, 1, 2.5}, "1 2.5"},
		{
			"mixed",
			[]any{"class1", "class2", "class3", map[string]bool{"class4": true, "class5": false, "class6": true}, []string{"class7"}},
			"class1 class2 class3 class4 class6 class7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clsx(tt.input...); got != tt.expected {
				t.Errorf("Clsx() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []any
		expected string
	}{
		{"plain classes", []any{"class1", "class2", "class3"}, "class1 class2 class3"},
		{"exact duplicates", []any{"my-2", "my-2", "class2"}, "my-2 class2"},
		{"later padding wins", []any{"p-2 text-sm", "p-4"}, "text-sm p-4"},
		{"size and color do not conflict", []any{"text-sm text-red-500", "text-lg"}, "text-red-500 text-lg"},
		{"variants are separate slots", []any{"p-2 hover:p-4 hover:p-6"}, "p-2 hover:p-6"},
		{"display", []any{"block", "flex"}, "flex"},
		{"negative margins", []any{"-mt-2", "mt-4"}, "mt-4"},
		{"important is separate", []any{"p-2 !p-4 p-3"}, "!p-4 p-3"},
		{"rounded family", []any{"rounded", "rounded-lg"}, "rounded-lg"},
		{"font weight and family", []any{"font-bold font-sans font-light"}, "font-sans font-light"},
		{"map input", []any{"px-2", map[string]bool{"px-4": true}}, "px-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.input...); got != tt.expected {
				t.Errorf("Merge() = %q, want %q", got, tt.expected)
			}
		})
	}
}
