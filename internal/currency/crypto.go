package currency

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultCryptoDecimals is the precision used by callers that have no
// stronger opinion. FormatCryptoValue never applies it implicitly.
const DefaultCryptoDecimals = 7

// FormatCryptoValue renders fractional values (|v| < 1) rounded to
// decimals places with trailing zeros trimmed, and all other values
// rounded to an integer.
func FormatCryptoValue(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unformattable
	}
	if decimals < 0 {
		decimals = 0
	}

	d := decimal.NewFromFloat(v)
	if math.Abs(v) < 1 {
		return d.Round(int32(decimals)).String()
	}
	return d.Round(0).String()
}
