package breakpoint

import (
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
)

// NeverMatches is the threshold reported for breakpoint names that are
// not configured. Such names never match, even past this width.
const NeverMatches = "999999px"

// Pixel sizes of the relative units ParseLength understands.
const (
	// EmPixels is the size of one em/rem at the default root font size.
	EmPixels = 16.0

	// ChPixels is the width of one character cell, also used to convert
	// terminal columns into pixels.
	ChPixels = 8.0
)

var unitPixels = []struct {
	suffix string
	px     float64
}{
	// rem before em so the longer suffix wins.
	{"rem", EmPixels},
	{"px", 1},
	{"em", EmPixels},
	{"ch", ChPixels},
}

// ParseLength converts a CSS-style length such as "768px", "48em" or
// "80ch" into pixels. A bare number is taken as pixels.
func ParseLength(s string) (float64, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	scale := 1.0
	for _, u := range unitPixels {
		if strings.HasSuffix(value, u.suffix) {
			value = strings.TrimSpace(strings.TrimSuffix(value, u.suffix))
			scale = u.px
			break
		}
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("length %q: %w", s, perrors.ErrInvalidLength)
	}
	return n * scale, nil
}
