// Package util provides shared utility functions used across perkakas.
package util

import "strings"

// IntToString converts an integer to its string representation without
// using the fmt package. This is useful in hot paths where allocation
// from fmt.Sprintf should be avoided.
func IntToString(n int64) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		// -n overflows for the minimum value, so peel the last digit first.
		last := -(n % 10)
		rest := -(n / 10)
		if rest == 0 {
			return "-" + string(rune('0'+last))
		}
		return "-" + IntToString(rest) + string(rune('0'+last))
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// GroupDigits inserts sep between every group of three digits counted
// from the right. The input must be a plain run of digits; a string of
// n digits receives exactly (n-1)/3 separators.
func GroupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	result.Grow(len(digits) + (len(digits)-1)/3*len(sep))
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			result.WriteString(sep)
		}
		result.WriteByte(digits[i])
	}
	return result.String()
}

// FormatNumber formats an integer with sep as the thousands separator.
// For example, FormatNumber(1234567, ",") becomes "1,234,567".
func FormatNumber(n int64, sep string) string {
	s := IntToString(n)
	if strings.HasPrefix(s, "-") {
		return "-" + GroupDigits(s[1:], sep)
	}
	return GroupDigits(s, sep)
}
