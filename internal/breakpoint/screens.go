package breakpoint

import (
	"sort"
)

// Screen is a named minimum-width threshold.
type Screen struct {
	Name     string
	MinWidth string
}

// Screens is an ordered set of breakpoints. Order is preserved for
// display; lookups are by name.
type Screens []Screen

// DefaultScreens mirrors the Tailwind CSS default breakpoints.
var DefaultScreens = Screens{
	{Name: "sm", MinWidth: "640px"},
	{Name: "md", MinWidth: "768px"},
	{Name: "lg", MinWidth: "1024px"},
	{Name: "xl", MinWidth: "1280px"},
	{Name: "2xl", MinWidth: "1536px"},
}

// ScreensFromMap orders an unordered mapping by threshold width, then
// by name. Thresholds that fail to parse sort last.
func ScreensFromMap(m map[string]string) Screens {
	screens := make(Screens, 0, len(m))
	for name, width := range m {
		screens = append(screens, Screen{Name: name, MinWidth: width})
	}
	sort.SliceStable(screens, func(i, j int) bool {
		wi, erri := ParseLength(screens[i].MinWidth)
		wj, errj := ParseLength(screens[j].MinWidth)
		switch {
		case erri != nil && errj != nil:
			return screens[i].Name < screens[j].Name
		case erri != nil:
			return false
		case errj != nil:
			return true
		case wi != wj:
			return wi < wj
		}
		return screens[i].Name < screens[j].Name
	})
	return screens
}

// Lookup returns the threshold configured for name. When a name appears
// more than once the last entry wins.
func (s Screens) Lookup(name string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Name == name {
			return s[i].MinWidth, true
		}
	}
	return "", false
}

// Names returns the screen names in order.
func (s Screens) Names() []string {
	names := make([]string, len(s))
	for i, sc := range s {
		names[i] = sc.Name
	}
	return names
}
