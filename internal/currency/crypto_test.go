package currency

import (
	"math"
	"testing"
)

func TestFormatCryptoValue(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		decimals int
		expected string
	}{
		{"integer", 2, DefaultCryptoDecimals, "2"},
		{"fraction at default precision", 0.0123456, DefaultCryptoDecimals, "0.0123456"},
		{"one place", 0.12345, 1, "0.1"},
		{"two places", 0.12345, 2, "0.12"},
		{"three places", 0.12345, 3, "0.123"},
		{"trims trailing zeros", 0.5, 7, "0.5"},
		{"negative fraction", -0.25, 1, "-0.3"},
		{"large value rounds to integer", 1234.56, 7, "1235"},
		{"exactly one", 1, 7, "1"},
		{"negative decimals clamp", 0.6, -3, "1"},
		{"zero", 0, 7, "0"},
		{"not a number", math.NaN(), 7, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCryptoValue(tt.input, tt.decimals)
			if got != tt.expected {
				t.Errorf("FormatCryptoValue(%v, %d) = %q, want %q", tt.input, tt.decimals, got, tt.expected)
			}
		})
	}
}
