package dates

import "testing"

func TestFormatters(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"usa", USADate, "2023-06-09", "Jun 09, 2023"},
		{"usa long", USADateLong, "2023-08-25", "August 25, 2023"},
		{"est", ESTDate, "2023-06-09T12:34:56", "Jun 09, 2023, 12:34 PM EST"},
		{"est morning", ESTDate, "2023-06-09T08:05:00", "Jun 09, 2023, 08:05 AM EST"},
		{"short year", ShortYearDate, "2023-06-09", "Jun 09, 23"},
		{"usa short", USAShortDate, "2023-06-09", "06/09/23"},
		{"en-gb", EnGBDate, "2023-06-09", "09 June 2023"},
		{"rfc3339", USADate, "2023-06-09T23:59:59Z", "Jun 09, 2023"},
		{"slashes", EnGBDate, "2023/06/09", "09 June 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.expected {
				t.Errorf("%s(%q) = %q, want %q", tt.name, tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatters_InvalidInput(t *testing.T) {
	fns := map[string]func(string) string{
		"USADate":       USADate,
		"USADateLong":   USADateLong,
		"ESTDate":       ESTDate,
		"ShortYearDate": ShortYearDate,
		"USAShortDate":  USAShortDate,
		"EnGBDate":      EnGBDate,
	}

	for name, fn := range fns {
		for _, input := range []string{"invalid", "", "2023-13-45"} {
			if got := fn(input); got != Invalid {
				t.Errorf("%s(%q) = %q, want %q", name, input, got, Invalid)
			}
		}
	}
}

func TestFormat_UnknownKind(t *testing.T) {
	if got := Format("iso-week", "2023-06-09"); got != Invalid {
		t.Errorf("Format(unknown) = %q, want %q", got, Invalid)
	}
}

func TestKinds_AllHaveLayouts(t *testing.T) {
	for _, k := range Kinds {
		if _, ok := layouts[k]; !ok {
			t.Errorf("kind %q has no layout", k)
		}
	}
}
