package availability

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, date string, hour, minute, minutes int) DateWindow {
	t.Helper()
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	w, err := NewDateWindow(d, TimeOfDay{hour, minute}, minutes)
	if err != nil {
		t.Fatalf("NewDateWindow: %v", err)
	}
	return w
}

func TestNewWeeklyWindowBounds(t *testing.T) {
	if _, err := NewWeeklyWindow(0, TimeOfDay{9, 0}, 9); err == nil {
		t.Error("duration 9 accepted, want error")
	}
	if _, err := NewWeeklyWindow(0, TimeOfDay{9, 0}, 361); err == nil {
		t.Error("duration 361 accepted, want error")
	}
	if _, err := NewWeeklyWindow(7, TimeOfDay{9, 0}, 60); err == nil {
		t.Error("weekday 7 accepted, want error")
	}
	if _, err := NewWeeklyWindow(6, TimeOfDay{9, 0}, 10); err != nil {
		t.Errorf("minimal valid window rejected: %v", err)
	}
	if _, err := NewWeeklyWindow(0, TimeOfDay{9, 0}, 360); err != nil {
		t.Errorf("maximal valid window rejected: %v", err)
	}
}

func TestWeeklyWindowConflicts(t *testing.T) {
	tests := []struct {
		name string
		a, b WeeklyWindow
		want bool
	}{
		{
			name: "same day plain overlap",
			a:    WeeklyWindow{Day: 0, Start: TimeOfDay{9, 0}, Minutes: 120},
			b:    WeeklyWindow{Day: 0, Start: TimeOfDay{10, 0}, Minutes: 120},
			want: true,
		},
		{
			name: "same day touching boundary",
			a:    WeeklyWindow{Day: 4, Start: TimeOfDay{9, 0}, Minutes: 60},
			b:    WeeklyWindow{Day: 4, Start: TimeOfDay{10, 0}, Minutes: 60},
			want: false,
		},
		{
			name: "same day disjoint",
			a:    WeeklyWindow{Day: 2, Start: TimeOfDay{8, 0}, Minutes: 60},
			b:    WeeklyWindow{Day: 2, Start: TimeOfDay{14, 0}, Minutes: 60},
			want: false,
		},
		{
			name: "same day identical",
			a:    WeeklyWindow{Day: 1, Start: TimeOfDay{9, 0}, Minutes: 60},
			b:    WeeklyWindow{Day: 1, Start: TimeOfDay{9, 0}, Minutes: 60},
			want: true,
		},
		{
			name: "monday night spills into tuesday window",
			a:    WeeklyWindow{Day: 0, Start: TimeOfDay{22, 0}, Minutes: 180}, // ends 01:00 Tue
			b:    WeeklyWindow{Day: 1, Start: TimeOfDay{0, 30}, Minutes: 60},
			want: true,
		},
		{
			name: "monday night and tuesday window after the tail",
			a:    WeeklyWindow{Day: 0, Start: TimeOfDay{22, 0}, Minutes: 180},
			b:    WeeklyWindow{Day: 1, Start: TimeOfDay{1, 0}, Minutes: 60}, // starts exactly at the tail end
			want: false,
		},
		{
			name: "adjacent days without midnight crossing",
			a:    WeeklyWindow{Day: 0, Start: TimeOfDay{9, 0}, Minutes: 60},
			b:    WeeklyWindow{Day: 1, Start: TimeOfDay{9, 0}, Minutes: 60},
			want: false,
		},
		{
			name: "window ending exactly at midnight does not spill",
			a:    WeeklyWindow{Day: 0, Start: TimeOfDay{22, 0}, Minutes: 120},
			b:    WeeklyWindow{Day: 1, Start: TimeOfDay{0, 0}, Minutes: 60},
			want: false,
		},
		{
			name: "sunday night spills into monday",
			a:    WeeklyWindow{Day: 6, Start: TimeOfDay{23, 0}, Minutes: 120}, // ends 01:00 Mon
			b:    WeeklyWindow{Day: 0, Start: TimeOfDay{0, 15}, Minutes: 30},
			want: true,
		},
		{
			name: "non-adjacent days never conflict",
			a:    WeeklyWindow{Day: 0, Start: TimeOfDay{22, 0}, Minutes: 360},
			b:    WeeklyWindow{Day: 3, Start: TimeOfDay{0, 0}, Minutes: 360},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ConflictsWith(tt.b); got != tt.want {
				t.Errorf("a.ConflictsWith(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.ConflictsWith(tt.a); got != tt.want {
				t.Errorf("conflict is not symmetric: b.ConflictsWith(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateWindowConflicts(t *testing.T) {
	tests := []struct {
		name string
		a, b DateWindow
		want bool
	}{
		{
			name: "same date overlap",
			a:    mustDate(t, "2025-03-10", 9, 0, 120),
			b:    mustDate(t, "2025-03-10", 10, 30, 60),
			want: true,
		},
		{
			name: "same date touching",
			a:    mustDate(t, "2025-03-10", 9, 0, 60),
			b:    mustDate(t, "2025-03-10", 10, 0, 60),
			want: false,
		},
		{
			name: "friday night spills into saturday",
			a:    mustDate(t, "2025-03-14", 23, 0, 120), // ends 01:00 on the 15th
			b:    mustDate(t, "2025-03-15", 0, 30, 60),
			want: true,
		},
		{
			name: "adjacent dates disjoint",
			a:    mustDate(t, "2025-03-14", 9, 0, 60),
			b:    mustDate(t, "2025-03-15", 9, 0, 60),
			want: false,
		},
		{
			name: "two days apart never conflicts",
			a:    mustDate(t, "2025-03-14", 23, 0, 360),
			b:    mustDate(t, "2025-03-16", 0, 0, 60),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ConflictsWith(tt.b); got != tt.want {
				t.Errorf("a.ConflictsWith(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.ConflictsWith(tt.a); got != tt.want {
				t.Errorf("conflict is not symmetric: b.ConflictsWith(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekdayHelpers(t *testing.T) {
	// 2025-03-10 is a Monday.
	mon := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if got := WeekdayOf(mon.Weekday()); got != 0 {
		t.Errorf("WeekdayOf(Monday) = %d, want 0", got)
	}
	sun := mon.AddDate(0, 0, 6)
	if got := WeekdayOf(sun.Weekday()); got != 6 {
		t.Errorf("WeekdayOf(Sunday) = %d, want 6", got)
	}
	if got := Weekday(0).Prev(); got != 6 {
		t.Errorf("Monday.Prev() = %d, want 6", got)
	}
	if got := Weekday(3).String(); got != "thursday" {
		t.Errorf("Weekday(3).String() = %q, want thursday", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 11, 2, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween = %d, want 1", got)
	}
	if got := DaysBetween(b, a); got != -1 {
		t.Errorf("DaysBetween reversed = %d, want -1", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween same = %d, want 0", got)
	}
}
