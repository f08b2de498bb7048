package tui

import "testing"

func TestCalculateLayout(t *testing.T) {
	tests := []struct {
		name             string
		width            int
		height           int
		screenCount      int
		wide             bool
		wantTooSmall     bool
		wantWide         bool
		wantScreens      int
		wantEventsHeight int
	}{
		{
			name:             "wide terminal with default screens",
			width:            120,
			height:           40,
			screenCount:      5,
			wide:             true,
			wantWide:         true,
			wantScreens:      6,
			wantEventsHeight: 26, // 40 - (1 + 6 + 1 + 1 + 5)
		},
		{
			name:             "compact terminal",
			width:            80,
			height:           24,
			screenCount:      5,
			wide:             false,
			wantScreens:      1,
			wantEventsHeight: 15, // 24 - (1 + 1 + 1 + 1 + 5)
		},
		{
			name:             "wide but short falls back to compact",
			width:            120,
			height:           12,
			screenCount:      5,
			wide:             true,
			wantWide:         false,
			wantScreens:      1,
			wantEventsHeight: 3,
		},
		{
			name:         "too narrow",
			width:        30,
			height:       40,
			screenCount:  5,
			wantTooSmall: true,
		},
		{
			name:         "too short",
			width:        120,
			height:       8,
			screenCount:  5,
			wantTooSmall: true,
		},
		{
			name:             "minimum size",
			width:            MinTerminalWidth,
			height:           MinTerminalHeight,
			screenCount:      1,
			wantScreens:      1,
			wantEventsHeight: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := CalculateLayout(tt.width, tt.height, tt.screenCount, tt.wide)

			if layout.TooSmall != tt.wantTooSmall {
				t.Fatalf("TooSmall = %v, want %v", layout.TooSmall, tt.wantTooSmall)
			}
			if tt.wantTooSmall {
				if layout.TooSmallMessage == "" {
					t.Error("expected a TooSmallMessage")
				}
				return
			}
			if layout.Wide != tt.wantWide {
				t.Errorf("Wide = %v, want %v", layout.Wide, tt.wantWide)
			}
			if layout.ScreensPanelHeight != tt.wantScreens {
				t.Errorf("ScreensPanelHeight = %d, want %d", layout.ScreensPanelHeight, tt.wantScreens)
			}
			if layout.EventsHeight != tt.wantEventsHeight {
				t.Errorf("EventsHeight = %d, want %d", layout.EventsHeight, tt.wantEventsHeight)
			}
		})
	}
}

func TestLayoutContentWidth(t *testing.T) {
	layout := CalculateLayout(100, 30, 3, true)
	if got := layout.ContentWidth(); got != 96 {
		t.Errorf("ContentWidth() = %d, want 96", got)
	}
}
