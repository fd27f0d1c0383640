package availability

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateWeeklyWindow(t *testing.T) {
	existing := []WeeklyWindow{
		{Day: 0, Start: TimeOfDay{9, 0}, Minutes: 120},  // monday 09:00-11:00
		{Day: 4, Start: TimeOfDay{22, 0}, Minutes: 180}, // friday 22:00-01:00
	}

	tests := []struct {
		name         string
		candidate    WeeklyWindow
		session      int
		wantConflict bool
		wantShort    bool
	}{
		{
			name:      "fits a free weekday",
			candidate: WeeklyWindow{Day: 2, Start: TimeOfDay{9, 0}, Minutes: 60},
			session:   60,
		},
		{
			name:      "back to back with existing",
			candidate: WeeklyWindow{Day: 0, Start: TimeOfDay{11, 0}, Minutes: 60},
			session:   60,
		},
		{
			name:         "overlaps same day",
			candidate:    WeeklyWindow{Day: 0, Start: TimeOfDay{10, 0}, Minutes: 60},
			session:      60,
			wantConflict: true,
		},
		{
			name:         "overlaps friday tail on saturday",
			candidate:    WeeklyWindow{Day: 5, Start: TimeOfDay{0, 30}, Minutes: 60},
			session:      60,
			wantConflict: true,
		},
		{
			name:      "shorter than session time",
			candidate: WeeklyWindow{Day: 2, Start: TimeOfDay{9, 0}, Minutes: 30},
			session:   60,
			wantShort: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeeklyWindow(tt.candidate, tt.session, existing)
			switch {
			case tt.wantShort:
				var short *WindowTooShortError
				if !errors.As(err, &short) {
					t.Fatalf("err = %v, want WindowTooShortError", err)
				}
				if short.SessionMinutes != tt.session {
					t.Errorf("SessionMinutes = %d, want %d", short.SessionMinutes, tt.session)
				}
			case tt.wantConflict:
				var conflict *ConflictError
				if !errors.As(err, &conflict) {
					t.Fatalf("err = %v, want ConflictError", err)
				}
				// The message must name both ranges so the user can fix the schedule.
				if !strings.Contains(conflict.Error(), conflict.Window) || !strings.Contains(conflict.Error(), conflict.Existing) {
					t.Errorf("conflict message %q does not name both windows", conflict.Error())
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestValidateWeeklyWindowShortCircuits(t *testing.T) {
	existing := []WeeklyWindow{
		{Day: 1, Start: TimeOfDay{9, 0}, Minutes: 60},
		{Day: 1, Start: TimeOfDay{10, 0}, Minutes: 60},
	}
	candidate := WeeklyWindow{Day: 1, Start: TimeOfDay{9, 30}, Minutes: 120} // hits both

	err := ValidateWeeklyWindow(candidate, 30, existing)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if conflict.Existing != existing[0].Describe() {
		t.Errorf("validator did not stop at the first conflict: reported %q", conflict.Existing)
	}
}

func TestValidateDateSet(t *testing.T) {
	ok := []DateWindow{
		mustDate(t, "2025-03-10", 9, 0, 60),
		mustDate(t, "2025-03-10", 10, 0, 60), // touching, allowed
		mustDate(t, "2025-03-12", 9, 0, 60),
	}
	if err := ValidateDateSet(ok, 60); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}

	bad := []DateWindow{
		mustDate(t, "2025-03-14", 23, 0, 120),
		mustDate(t, "2025-03-15", 0, 30, 60), // inside the midnight tail
	}
	var conflict *ConflictError
	if err := ValidateDateSet(bad, 60); !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
}
