package availability

import (
	"testing"
	"time"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return d
}

func TestSlotConflictsWith(t *testing.T) {
	tests := []struct {
		name string
		a, b Slot
		want bool
	}{
		{
			name: "same date overlap",
			a:    Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{9, 0}, Minutes: 60},
			b:    Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{9, 30}, Minutes: 60},
			want: true,
		},
		{
			name: "same date back to back",
			a:    Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{9, 0}, Minutes: 60},
			b:    Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{10, 0}, Minutes: 60},
			want: false,
		},
		{
			name: "late session spills into next date",
			a:    Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{23, 30}, Minutes: 90},
			b:    Slot{Date: day(t, "2025-03-11"), Start: TimeOfDay{0, 30}, Minutes: 30},
			want: true,
		},
		{
			name: "adjacent dates disjoint",
			a:    Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{9, 0}, Minutes: 60},
			b:    Slot{Date: day(t, "2025-03-11"), Start: TimeOfDay{9, 0}, Minutes: 60},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ConflictsWith(tt.b); got != tt.want {
				t.Errorf("a.ConflictsWith(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.ConflictsWith(tt.a); got != tt.want {
				t.Errorf("conflict is not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotLiesWithinDate(t *testing.T) {
	window := mustDate(t, "2025-03-10", 22, 0, 180) // 22:00 - 01:00 next day

	tests := []struct {
		name string
		slot Slot
		want bool
	}{
		{
			name: "inside same date",
			slot: Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{22, 30}, Minutes: 60},
			want: true,
		},
		{
			name: "exact fit",
			slot: Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{22, 0}, Minutes: 180},
			want: true,
		},
		{
			name: "starts before window",
			slot: Slot{Date: day(t, "2025-03-10"), Start: TimeOfDay{21, 30}, Minutes: 60},
			want: false,
		},
		{
			name: "early morning inside previous date's tail",
			slot: Slot{Date: day(t, "2025-03-11"), Start: TimeOfDay{0, 0}, Minutes: 60},
			want: true,
		},
		{
			name: "early morning past the tail",
			slot: Slot{Date: day(t, "2025-03-11"), Start: TimeOfDay{0, 30}, Minutes: 60}, // ends 01:30 > 01:00
			want: false,
		},
		{
			name: "unrelated date",
			slot: Slot{Date: day(t, "2025-03-13"), Start: TimeOfDay{22, 30}, Minutes: 60},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slot.LiesWithinDate(window); got != tt.want {
				t.Errorf("LiesWithinDate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotLiesWithinWeekly(t *testing.T) {
	// Monday 22:00 for 3h, ending 01:00 Tuesday.
	window := WeeklyWindow{Day: 0, Start: TimeOfDay{22, 0}, Minutes: 180}

	monday := day(t, "2025-03-10")
	tuesday := day(t, "2025-03-11")

	tests := []struct {
		name string
		slot Slot
		want bool
	}{
		{
			name: "monday evening inside",
			slot: Slot{Date: monday, Start: TimeOfDay{23, 0}, Minutes: 60},
			want: true,
		},
		{
			name: "tuesday early morning inside the monday tail",
			slot: Slot{Date: tuesday, Start: TimeOfDay{0, 15}, Minutes: 30},
			want: true,
		},
		{
			name: "tuesday morning past the tail",
			slot: Slot{Date: tuesday, Start: TimeOfDay{0, 45}, Minutes: 30},
			want: false,
		},
		{
			name: "wrong weekday",
			slot: Slot{Date: day(t, "2025-03-13"), Start: TimeOfDay{22, 30}, Minutes: 60},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slot.LiesWithinWeekly(window); got != tt.want {
				t.Errorf("LiesWithinWeekly = %v, want %v", got, tt.want)
			}
		})
	}
}
