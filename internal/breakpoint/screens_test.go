package breakpoint

import (
	"reflect"
	"testing"
)

func TestScreensFromMap_OrdersByWidth(t *testing.T) {
	screens := ScreensFromMap(map[string]string{
		"lg":     "1024px",
		"sm":     "640px",
		"broken": "wide",
		"md":     "48em",
		"tablet": "768px",
	})

	want := []string{"sm", "md", "tablet", "lg", "broken"}
	if got := screens.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestScreens_Lookup(t *testing.T) {
	screens := Screens{
		{Name: "md", MinWidth: "700px"},
		{Name: "lg", MinWidth: "1024px"},
		{Name: "md", MinWidth: "768px"},
	}

	width, ok := screens.Lookup("md")
	if !ok || width != "768px" {
		t.Errorf("Lookup(md) = %q, %v; want 768px, true", width, ok)
	}

	if _, ok := screens.Lookup("xl"); ok {
		t.Error("Lookup(xl) should report missing")
	}
}

func TestDefaultScreens_Parse(t *testing.T) {
	for _, s := range DefaultScreens {
		if _, err := ParseLength(s.MinWidth); err != nil {
			t.Errorf("default screen %s has invalid width %q: %v", s.Name, s.MinWidth, err)
		}
	}
}
