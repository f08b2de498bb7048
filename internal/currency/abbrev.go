package currency

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Unformattable is returned in place of a value that cannot be rendered.
const Unformattable = "-"

// Unit is one magnitude tier of an abbreviation.
type Unit struct {
	Suffix string
	Scale  float64
}

// Units are the abbreviation tiers, largest first.
var Units = []Unit{
	{Suffix: "B", Scale: 1e9},
	{Suffix: "M", Scale: 1e6},
	{Suffix: "K", Scale: 1e3},
}

// AbbrevOptions selects the abbreviation variant.
type AbbrevOptions struct {
	// KeepTrailingZero always emits one decimal place ("1.0K") instead
	// of dropping a zero fraction ("1K").
	KeepTrailingZero bool
}

// Abbreviate shortens v with a K, M or B suffix once |v| reaches 1000.
// The tier is chosen from |v| before rounding, so 999999 becomes
// "1000K" rather than being promoted to M. The scaled value is rounded
// half away from zero to one decimal place and the sign is written once.
func Abbreviate(v float64, opts AbbrevOptions) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unformattable
	}

	abs := math.Abs(v)
	if abs < 1000 {
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}

	for _, u := range Units {
		if abs < u.Scale {
			continue
		}
		scaled := decimal.NewFromFloat(abs).Div(decimal.NewFromFloat(u.Scale)).Round(1)
		if opts.KeepTrailingZero {
			return sign + scaled.StringFixed(1) + u.Suffix
		}
		return sign + scaled.String() + u.Suffix
	}

	// Unreachable: the smallest unit is 1000.
	return sign + strconv.FormatFloat(abs, 'f', -1, 64)
}

// FormatK abbreviates v dropping a zero fraction: 1500 -> "1.5K",
// 2000 -> "2K", -2500 -> "-2.5K".
func FormatK(v float64) string {
	return Abbreviate(v, AbbrevOptions{})
}

// FormatPriceDigit abbreviates v with exactly one decimal place:
// 1000 -> "1.0K", 1200000 -> "1.2M".
func FormatPriceDigit(v float64) string {
	return Abbreviate(v, AbbrevOptions{KeepTrailingZero: true})
}
