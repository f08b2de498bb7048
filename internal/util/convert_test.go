package util

import (
	"math"
	"strings"
	"testing"
)

func TestIntToString(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"single digit", 5, "5"},
		{"double digit", 42, "42"},
		{"triple digit", 123, "123"},
		{"four digit", 1234, "1234"},
		{"large number", 1234567, "1234567"},
		{"negative single", -5, "-5"},
		{"negative multi", -123, "-123"},
		{"negative large", -1234567, "-1234567"},
		{"math.MaxInt64", math.MaxInt64, "9223372036854775807"},
		{"math.MinInt64", math.MinInt64, "-9223372036854775808"},
		{"negative one", -1, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IntToString(tt.input)
			if result != tt.expected {
				t.Errorf("IntToString(%d) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{"empty", "", ".", ""},
		{"single digit", "5", ".", "5"},
		{"triple digit", "123", ".", "123"},
		{"four digit", "1234", ".", "1.234"},
		{"six digit", "123456", ".", "123.456"},
		{"nine digit", "123456789", ".", "123.456.789"},
		{"comma separator", "1000000", ",", "1,000,000"},
		{"multi-char separator", "1000000", "'_", "1'_000'_000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GroupDigits(tt.input, tt.sep)
			if result != tt.expected {
				t.Errorf("GroupDigits(%q, %q) = %q, want %q", tt.input, tt.sep, result, tt.expected)
			}
		})
	}
}

func TestGroupDigits_SeparatorCount(t *testing.T) {
	digits := "12345678901234567890"
	for n := 1; n <= len(digits); n++ {
		result := GroupDigits(digits[:n], ".")
		got := strings.Count(result, ".")
		want := (n - 1) / 3
		if got != want {
			t.Errorf("GroupDigits(%d digits) has %d separators, want %d", n, got, want)
		}
		if strings.HasPrefix(result, ".") {
			t.Errorf("GroupDigits(%q) = %q starts with an empty group", digits[:n], result)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"single digit", 5, "5"},
		{"triple digit", 123, "123"},
		{"four digit", 1234, "1,234"},
		{"seven digit", 1234567, "1,234,567"},
		{"negative single digit", -5, "-5"},
		{"negative four digit", -1234, "-1,234"},
		{"negative large", -1234567890, "-1,234,567,890"},
		{"math.MaxInt64", math.MaxInt64, "9,223,372,036,854,775,807"},
		{"math.MinInt64", math.MinInt64, "-9,223,372,036,854,775,808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatNumber(tt.input, ",")
			if result != tt.expected {
				t.Errorf("FormatNumber(%d) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
