package currency

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatUSD formats v as US dollars with two decimal places.
//
//	FormatUSD(1000000)  // "$1,000,000.00"
//	FormatUSD(-1234.5)  // "-$1,234.50"
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unformattable
	}

	rounded := decimal.NewFromFloat(math.Abs(v)).Round(2)
	out := "$" + message.NewPrinter(language.AmericanEnglish).Sprintf("%.2f", rounded.InexactFloat64())

	if v < 0 && !rounded.IsZero() {
		return "-" + out
	}
	return out
}

// FormatLocale renders v with the grouping and decimal conventions of tag.
// decimals <= 0 renders a rounded integer.
func FormatLocale(tag language.Tag, v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unformattable
	}
	p := message.NewPrinter(tag)
	if decimals <= 0 {
		return p.Sprintf("%d", int64(math.Round(v)))
	}
	return p.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}
