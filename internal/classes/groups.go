package classes

import "strings"

var exactGroups = map[string]string{
	"block": "display", "inline-block": "display", "inline": "display",
	"flex": "display", "inline-flex": "display", "grid": "display",
	"inline-grid": "display", "hidden": "display", "contents": "display",
	"table": "display",

	"static": "position", "fixed": "position", "absolute": "position",
	"relative": "position", "sticky": "position",

	"rounded": "rounded", "shadow": "shadow", "border": "border-width",

	"italic": "font-style", "not-italic": "font-style",
	"underline": "text-decoration", "line-through": "text-decoration",
	"no-underline": "text-decoration",

	"uppercase": "text-transform", "lowercase": "text-transform",
	"capitalize": "text-transform", "normal-case": "text-transform",
}

var textSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true,
	"2xl": true, "3xl": true, "4xl": true, "5xl": true, "6xl": true,
	"7xl": true, "8xl": true, "9xl": true,
}

var textAligns = map[string]bool{
	"left": true, "center": true, "right": true, "justify": true,
	"start": true, "end": true,
}

var fontWeights = map[string]bool{
	"thin": true, "extralight": true, "light": true, "normal": true,
	"medium": true, "semibold": true, "bold": true, "extrabold": true,
	"black": true,
}

// prefixGroups are matched longest first; each prefix is its own group.
var prefixGroups = []string{
	"min-w-", "max-w-", "min-h-", "max-h-",
	"gap-x-", "gap-y-", "gap-",
	"px-", "py-", "pt-", "pr-", "pb-", "pl-", "p-",
	"mx-", "my-", "mt-", "mr-", "mb-", "ml-", "m-",
	"w-", "h-", "z-", "opacity-", "leading-", "tracking-",
	"rounded-", "shadow-", "bg-",
}

// utilityGroup returns the conflict group of a Tailwind utility, or ""
// when the class is not recognised.
func utilityGroup(base string) string {
	if group, ok := exactGroups[base]; ok {
		return group
	}

	if value, ok := strings.CutPrefix(base, "text-"); ok {
		switch {
		case textSizes[value]:
			return "text-size"
		case textAligns[value]:
			return "text-align"
		default:
			return "text-color"
		}
	}
	if value, ok := strings.CutPrefix(base, "font-"); ok {
		if fontWeights[value] {
			return "font-weight"
		}
		return "font-family"
	}

	for _, prefix := range prefixGroups {
		if strings.HasPrefix(base, prefix) {
			switch prefix {
			case "rounded-":
				return "rounded"
			case "shadow-":
				return "shadow"
			}
			return prefix
		}
	}
	return ""
}
