package availability

import (
	"testing"
	"time"
)

func TestCheckerCanBook(t *testing.T) {
	// Monday 2025-03-10. Recurring windows: Monday 09:00-12:00 and a
	// Sunday 23:00-01:00 window that rolls into Monday morning.
	weekly := []WeeklyWindow{
		{Day: 0, Start: TimeOfDay{9, 0}, Minutes: 180},
		{Day: 6, Start: TimeOfDay{23, 0}, Minutes: 120},
	}

	tests := []struct {
		name    string
		checker Checker
		start   time.Time
		want    bool
	}{
		{
			name:    "fits inside a recurring window",
			checker: Checker{SessionMinutes: 60, Weekly: weekly},
			start:   at(t, "2025-03-10", 9, 0),
			want:    true,
		},
		{
			name:    "last slot of a recurring window",
			checker: Checker{SessionMinutes: 60, Weekly: weekly},
			start:   at(t, "2025-03-10", 11, 0),
			want:    true,
		},
		{
			name:    "runs past the recurring window end",
			checker: Checker{SessionMinutes: 60, Weekly: weekly},
			start:   at(t, "2025-03-10", 11, 30),
			want:    false,
		},
		{
			name:    "fits the previous weekday's midnight tail",
			checker: Checker{SessionMinutes: 30, Weekly: weekly},
			start:   at(t, "2025-03-10", 0, 15),
			want:    true,
		},
		{
			name:    "past the midnight tail",
			checker: Checker{SessionMinutes: 60, Weekly: weekly},
			start:   at(t, "2025-03-10", 0, 30),
			want:    false,
		},
		{
			name: "overlapping session blocks booking",
			checker: Checker{
				SessionMinutes: 60,
				Weekly:         weekly,
				Existing: []Slot{
					{Date: day(t, "2025-03-10"), Start: TimeOfDay{9, 30}, Minutes: 60},
				},
			},
			start: at(t, "2025-03-10", 9, 0),
			want:  false,
		},
		{
			name: "exact duplicate session blocks booking",
			checker: Checker{
				SessionMinutes: 60,
				Weekly:         weekly,
				Existing: []Slot{
					{Date: day(t, "2025-03-10"), Start: TimeOfDay{9, 0}, Minutes: 60},
				},
			},
			start: at(t, "2025-03-10", 9, 0),
			want:  false,
		},
		{
			name: "session elsewhere does not block",
			checker: Checker{
				SessionMinutes: 60,
				Weekly:         weekly,
				Existing: []Slot{
					{Date: day(t, "2025-03-10"), Start: TimeOfDay{10, 0}, Minutes: 60},
				},
			},
			start: at(t, "2025-03-10", 9, 0),
			want:  true,
		},
		{
			name: "request fitting an exception window",
			checker: Checker{
				SessionMinutes: 60,
				Weekly:         weekly,
				Exceptions:     []DateWindow{mustDate(t, "2025-03-10", 14, 0, 120)},
			},
			start: at(t, "2025-03-10", 14, 0),
			want:  true,
		},
		{
			name: "exception replaces recurring windows entirely",
			checker: Checker{
				SessionMinutes: 60,
				Weekly:         weekly,
				Exceptions:     []DateWindow{mustDate(t, "2025-03-10", 14, 0, 120)},
			},
			// Would fit the Monday 09:00 recurring window, but an exception
			// exists for the date, so recurring windows are ignored.
			start: at(t, "2025-03-10", 9, 0),
			want:  false,
		},
		{
			name: "exception on another date leaves recurring in effect",
			checker: Checker{
				SessionMinutes: 60,
				Weekly:         weekly,
				Exceptions:     []DateWindow{mustDate(t, "2025-03-11", 14, 0, 120)},
			},
			start: at(t, "2025-03-10", 9, 0),
			want:  true,
		},
		{
			name:    "no windows at all",
			checker: Checker{SessionMinutes: 60},
			start:   at(t, "2025-03-10", 9, 0),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checker.CanBook(tt.start); got != tt.want {
				t.Errorf("CanBook(%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}
