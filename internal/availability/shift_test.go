package availability

import (
	"testing"
	"time"
)

func zone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%q): %v", name, err)
	}
	return loc
}

func TestSlotInZoneIdentity(t *testing.T) {
	tokyo := zone(t, "Asia/Tokyo")
	s := Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{9, 0}, Minutes: 60}

	got := s.InZone(tokyo, tokyo)
	if !got.Date.Equal(s.Date) || !got.Start.Equal(s.Start) {
		t.Errorf("identity shift changed the slot: %v -> %v", s.Describe(), got.Describe())
	}
}

func TestSlotInZoneRollover(t *testing.T) {
	ny := zone(t, "America/New_York")
	tokyo := zone(t, "Asia/Tokyo")

	// 20:00 Monday in New York is already Tuesday in Tokyo.
	s := Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{20, 0}, Minutes: 60}
	got := s.InZone(ny, tokyo)

	if want := day(t, "2025-03-11"); !got.Date.Equal(want) {
		t.Errorf("shifted date = %v, want %v", got.Date, want)
	}
	// EDT is UTC-4 on that date, Tokyo UTC+9: 13 hours ahead.
	if want := (TimeOfDay{9, 0}); !got.Start.Equal(want) {
		t.Errorf("shifted start = %v, want %v", got.Start, want)
	}
	if got.Minutes != s.Minutes {
		t.Errorf("duration changed across shift: %d", got.Minutes)
	}
}

func TestSlotInZoneRoundTrip(t *testing.T) {
	berlin := zone(t, "Europe/Berlin")
	la := zone(t, "America/Los_Angeles")

	tests := []struct {
		name string
		slot Slot
	}{
		{"midday", Slot{Date: day(t, "2025-06-02"), Start: TimeOfDay{12, 0}, Minutes: 60}},
		{"just after midnight", Slot{Date: day(t, "2025-06-02"), Start: TimeOfDay{0, 30}, Minutes: 30}},
		{"late evening", Slot{Date: day(t, "2025-06-02"), Start: TimeOfDay{23, 45}, Minutes: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := tt.slot.InZone(berlin, la).InZone(la, berlin)
			if !back.Date.Equal(tt.slot.Date) || !back.Start.Equal(tt.slot.Start) {
				t.Errorf("round trip drifted: %v -> %v", tt.slot.Describe(), back.Describe())
			}
		})
	}
}

func TestDateWindowInZoneRollsDateBack(t *testing.T) {
	utc := StorageZone()
	ny := zone(t, "America/New_York")

	// 02:00 UTC on the 11th is 22:00 on the 10th in New York.
	w := mustDate(t, "2025-06-11", 2, 0, 120)
	got := w.InZone(utc, ny)

	if want := day(t, "2025-06-10"); !got.Date.Equal(want) {
		t.Errorf("shifted date = %v, want %v", got.Date, want)
	}
	if want := (TimeOfDay{22, 0}); !got.Start.Equal(want) {
		t.Errorf("shifted start = %v, want %v", got.Start, want)
	}
}

func TestWeeklyWindowInZoneRecomputesWeekday(t *testing.T) {
	utc := StorageZone()
	tokyo := zone(t, "Asia/Tokyo")

	tests := []struct {
		name      string
		window    WeeklyWindow
		from, to  *time.Location
		wantDay   Weekday
		wantStart TimeOfDay
	}{
		{
			name:      "late UTC monday becomes tuesday in tokyo",
			window:    WeeklyWindow{Day: 0, Start: TimeOfDay{20, 0}, Minutes: 120},
			from:      utc,
			to:        tokyo,
			wantDay:   1,
			wantStart: TimeOfDay{5, 0},
		},
		{
			name:      "early tokyo monday becomes sunday in UTC",
			window:    WeeklyWindow{Day: 0, Start: TimeOfDay{5, 0}, Minutes: 60},
			from:      tokyo,
			to:        utc,
			wantDay:   6,
			wantStart: TimeOfDay{20, 0},
		},
		{
			name:      "no weekday change at midday",
			window:    WeeklyWindow{Day: 3, Start: TimeOfDay{12, 0}, Minutes: 60},
			from:      utc,
			to:        tokyo,
			wantDay:   3,
			wantStart: TimeOfDay{21, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.window.InZone(tt.from, tt.to)
			if got.Day != tt.wantDay {
				t.Errorf("Day = %v, want %v", got.Day, tt.wantDay)
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", got.Start, tt.wantStart)
			}
		})
	}
}
