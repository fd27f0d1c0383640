package availability

import (
	"fmt"
	"regexp"
)

// timeOfDayPattern accepts strictly zero-padded 24-hour HH:MM.
var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// TimeOfDay is an immutable wall-clock time. Arithmetic returns new values.
//
// Normalized values satisfy 0 <= Hour <= 23 and 0 <= Minute <= 59. The one
// exception is the boundary-skipping mode of AddMinutes, which deliberately
// lets Hour run past 23 so that a window end "past midnight" stays
// comparable to its start.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay builds a normalized TimeOfDay, rejecting out-of-range parts.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range", ErrBadTimeFormat, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range", ErrBadTimeFormat, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses strict "HH:MM" 24-hour input. "9:00" and "24:00"
// are rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
	}
	// The pattern guarantees two-digit numeric groups.
	hour := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minute := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// AddMinutes returns the time n minutes later (n may be negative).
//
// With skipBoundaries the hour component is allowed to leave the 0-23 range:
// 23:30 + 90 yields 25:00, not 01:00. Callers use this to keep a
// midnight-crossing end time ordered after its start before deciding how to
// interpret it. Without skipBoundaries the result wraps modulo one day.
func (t TimeOfDay) AddMinutes(n int, skipBoundaries bool) TimeOfDay {
	total := t.Hour*60 + t.Minute + n
	if skipBoundaries {
		h, m := total/60, total%60
		if m < 0 {
			m += 60
			h--
		}
		return TimeOfDay{Hour: h, Minute: m}
	}
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Hour < other.Hour || (t.Hour == other.Hour && t.Minute < other.Minute)
}

// Equal reports whether t and other are the same wall-clock time.
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.Hour == other.Hour && t.Minute == other.Minute
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return other.Before(t)
}

// String renders zero-padded HH:MM. Boundary-skipped values keep their
// overflowed hour (e.g. "25:00").
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

const minutesPerDay = 24 * 60
