// Package strcase converts identifiers and labels between naming styles.
package strcase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	nonLetterPattern   = regexp.MustCompile(`[^a-zA-Z ]`)
	onlySpecialPattern = regexp.MustCompile(`^[^a-zA-Z0-9]+$`)
	camelBoundary      = regexp.MustCompile(`\w[A-Z]`)
)

// ReplaceSpecialChar replaces every character that is not an ASCII
// letter or a space with char.
//
//	ReplaceSpecialChar("this_is_a_test", "-") // "this-is-a-test"
func ReplaceSpecialChar(s, char string) string {
	return nonLetterPattern.ReplaceAllLiteralString(s, char)
}

// IsSpecialChar reports whether s is non-empty and consists only of
// characters that are neither ASCII letters nor digits.
func IsSpecialChar(s string) bool {
	return onlySpecialPattern.MatchString(s)
}

// TitleCase converts snake_case, camelCase and punctuated text into
// space separated title case. Leading special characters become a
// leading space.
//
//	TitleCase("this_is_a_test_string") // "This Is A Test String"
//	TitleCase("helloWorld")            // "Hello World"
func TitleCase(s string) string {
	replaced := []rune(ReplaceSpecialChar(s, "_"))

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i, r := range replaced {
		upper := unicode.ToUpper(r)
		switch {
		case i == 0 || IsSpecialChar(string(replaced[i-1])):
			b.WriteRune(upper)
		case r == upper && !IsSpecialChar(string(r)):
			b.WriteByte('_')
			b.WriteRune(upper)
		default:
			b.WriteRune(r)
		}
	}

	return ReplaceSpecialChar(b.String(), " ")
}

// SnakeToCamel converts snake_case to camelCase. The first segment is
// kept as is.
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// CamelToSnake converts camelCase to snake_case.
func CamelToSnake(s string) string {
	return camelBoundary.ReplaceAllStringFunc(s, func(m string) string {
		return m[:1] + "_" + strings.ToLower(m[1:])
	})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
