package currency

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "$0.00"},
		{"million", 1000000, "$1,000,000.00"},
		{"cents", 1234.5, "$1,234.50"},
		{"rounds cents", 19.999, "$20.00"},
		{"negative", -1234.5, "-$1,234.50"},
		{"billions half up", 1234567890.125, "$1,234,567,890.13"},
		{"tiny negative rounds to zero", -0.001, "$0.00"},
		{"not a number", math.NaN(), "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUSD(tt.input)
			if got != tt.expected {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatLocale_Integers(t *testing.T) {
	tests := []struct {
		name     string
		tag      language.Tag
		input    float64
		expected string
	}{
		{"english", language.English, 1234567, "1,234,567"},
		{"indonesian", language.Indonesian, 1234567, "1.234.567"},
		{"rounds", language.English, 999.6, "1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLocale(tt.tag, tt.input, 0)
			if got != tt.expected {
				t.Errorf("FormatLocale(%v, %v, 0) = %q, want %q", tt.tag, tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatLocale_Infinite(t *testing.T) {
	if got := FormatLocale(language.English, math.Inf(1), 2); got != Unformattable {
		t.Errorf("FormatLocale(+Inf) = %q, want %q", got, Unformattable)
	}
}
