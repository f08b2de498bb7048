// Package classes joins CSS class names and merges conflicting
// Tailwind utility classes.
package classes

import (
	"sort"
	"strconv"
	"strings"
)

// Clsx joins class values into a space separated string. Strings and
// non-zero numbers are used as is, slices are flattened, and a
// map[string]bool contributes its true keys in sorted order. nil,
// booleans and empty strings are skipped.
func Clsx(values ...any) string {
	var parts []string
	for _, v := range values {
		parts = appendValue(parts, v)
	}
	return strings.Join(parts, " ")
}

func appendValue(parts []string, v any) []string {
	switch t := v.(type) {
	case nil, bool:
	case string:
		if t != "" {
			parts = append(parts, t)
		}
	case int:
		if t != 0 {
			parts = append(parts, strconv.Itoa(t))
		}
	case float64:
		if t != 0 {
			parts = append(parts, strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []string:
		for _, s := range t {
			parts = appendValue(parts, s)
		}
	case []any:
		for _, item := range t {
			parts = appendValue(parts, item)
		}
	case map[string]bool:
		keys := make([]string, 0, len(t))
		for k, on := range t {
			if on && k != "" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		parts = append(parts, keys...)
	}
	return parts
}

// Merge joins values like Clsx and then removes classes overridden by a
// later class of the same utility group under the same variants, so
// Merge("p-2 text-sm", "p-4") is "text-sm p-4". Exact duplicates
// collapse to their last occurrence.
func Merge(values ...any) string {
	classes := strings.Fields(Clsx(values...))

	seen := make(map[string]bool, len(classes))
	kept := make([]string, 0, len(classes))
	for i := len(classes) - 1; i >= 0; i-- {
		key := conflictKey(classes[i])
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, classes[i])
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

// conflictKey identifies the slot a class occupies: its variant prefix,
// important marker and utility group. Unknown utilities occupy a slot
// of their own.
func conflictKey(class string) string {
	variants := ""
	base := class
	if i := strings.LastIndex(class, ":"); i >= 0 {
		variants, base = class[:i+1], class[i+1:]
	}
	important := ""
	if strings.HasPrefix(base, "!") {
		important, base = "!", base[1:]
	}
	base = strings.TrimPrefix(base, "-")

	if group := utilityGroup(base); group != "" {
		return variants + important + group
	}
	return variants + important + base
}
