// Package dates renders date strings in fixed US and UK styles.
//
// Every function accepts the common ISO-like inputs ("2023-06-09",
// "2023-06-09T12:34:56", RFC 3339) and returns Invalid for anything
// it cannot parse instead of an error.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Invalid is returned for input that cannot be parsed as a date.
const Invalid = "-"

// Kind names one of the supported output styles.
type Kind string

const (
	// KindUSA is "Jun 09, 2023".
	KindUSA Kind = "usa"
	// KindUSALong is "June 09, 2023".
	KindUSALong Kind = "usa-long"
	// KindEST is "Jun 09, 2023, 12:34 PM EST".
	KindEST Kind = "est"
	// KindShortYear is "Jun 09, 23".
	KindShortYear Kind = "short-year"
	// KindUSAShort is "06/09/23".
	KindUSAShort Kind = "usa-short"
	// KindEnGB is "09 June 2023".
	KindEnGB Kind = "en-gb"
)

var layouts = map[Kind]string{
	KindUSA:       "Jan 02, 2006",
	KindUSALong:   "January 02, 2006",
	KindEST:       "Jan 02, 2006, 03:04 PM",
	KindShortYear: "Jan 02, 06",
	KindUSAShort:  "01/02/06",
	KindEnGB:      "02 January 2006",
}

// Kinds lists the supported styles in a stable order.
var Kinds = []Kind{KindUSA, KindUSALong, KindEST, KindShortYear, KindUSAShort, KindEnGB}

var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// Parse reads s using the accepted input layouts.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// Format renders s in the given style. Unknown kinds and unparsable
// input both yield Invalid.
func Format(kind Kind, s string) string {
	layout, ok := layouts[kind]
	if !ok {
		return Invalid
	}
	t, err := Parse(s)
	if err != nil {
		return Invalid
	}
	out := t.Format(layout)
	if kind == KindEST {
		out += " EST"
	}
	return out
}

// USADate renders "Jun 09, 2023".
func USADate(s string) string { return Format(KindUSA, s) }

// USADateLong renders "August 25, 2023".
func USADateLong(s string) string { return Format(KindUSALong, s) }

// ESTDate renders "Jun 09, 2023, 12:34 PM EST". The wall clock time
// is kept as given; no zone conversion takes place.
func ESTDate(s string) string { return Format(KindEST, s) }

// ShortYearDate renders "Jun 09, 23".
func ShortYearDate(s string) string { return Format(KindShortYear, s) }

// USAShortDate renders "06/09/23".
func USAShortDate(s string) string { return Format(KindUSAShort, s) }

// EnGBDate renders "09 June 2023".
func EnGBDate(s string) string { return Format(KindEnGB, s) }
