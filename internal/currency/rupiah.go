// Package currency converts numeric values into grouped currency strings,
// magnitude abbreviations, fixed-precision values and Indonesian words.
package currency

import (
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
	"github.com/flashingpumpkin/perkakas/internal/util"
)

// RupiahPrefix is the conventional prefix for Indonesian Rupiah amounts.
const RupiahPrefix = "Rp."

// GroupOptions controls FormatGrouped output.
type GroupOptions struct {
	// Prefix is prepended as "<prefix> " when the result is non-empty.
	Prefix string

	// Separator joins groups of three integer digits (default ".").
	Separator string

	// DecimalSymbol joins the fractional remainder (default ",").
	DecimalSymbol string
}

// FormatRupiah formats a numeric string in Indonesian Rupiah style.
//
//	FormatRupiah("1000000", "Rp.") // "Rp. 1.000.000"
func FormatRupiah(num, prefix string) string {
	return FormatGrouped(num, GroupOptions{Prefix: prefix})
}

// FormatGrouped strips everything except digits and commas from num,
// groups the integer part in threes and re-attaches any fraction found
// after the first comma. An input without digits yields "".
func FormatGrouped(num string, opts GroupOptions) string {
	if opts.Separator == "" {
		opts.Separator = "."
	}
	if opts.DecimalSymbol == "" {
		opts.DecimalSymbol = ","
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}, num)

	intPart, fraction, hasFraction := strings.Cut(cleaned, ",")
	result := util.GroupDigits(intPart, opts.Separator)
	if hasFraction {
		result += opts.DecimalSymbol + strings.ReplaceAll(fraction, ",", "")
	}

	if result == "" {
		return ""
	}
	if opts.Prefix == "" {
		return result
	}
	return opts.Prefix + " " + result
}

// ParseRupiah parses a Rupiah amount such as "Rp. 1.000.000" back into
// an integer. Dots group digits and the first comma starts the fraction,
// matching FormatRupiah. A fraction of zeros is accepted; any other
// fraction fails with ErrInvalidInput.
func ParseRupiah(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if strings.HasPrefix(strings.ToLower(s), "rp") {
		s = strings.TrimPrefix(s[2:], ".")
	}
	whole, fraction, _ := strings.Cut(s, ",")
	if strings.Trim(fraction, "0") != "" {
		return 0, fmt.Errorf("parse rupiah %q: fractional amount: %w", amount, perrors.ErrInvalidInput)
	}
	whole = strings.NewReplacer(".", "", " ", "").Replace(whole)
	if whole == "" {
		return 0, fmt.Errorf("parse rupiah %q: %w", amount, perrors.ErrInvalidInput)
	}
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse rupiah %q: %w", amount, perrors.ErrInvalidInput)
	}
	return n, nil
}
