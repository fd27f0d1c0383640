package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Window duration bounds in minutes.
const (
	MinWindowMinutes = 10
	MaxWindowMinutes = 360
)

// Weekday follows the Monday=0 .. Sunday=6 convention used by all persisted
// day_of_week columns.
type Weekday int

var weekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (d Weekday) String() string {
	if d < 0 || d > 6 {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Prev returns the preceding weekday, wrapping Monday back to Sunday.
func (d Weekday) Prev() Weekday {
	return (d + 6) % 7
}

// WeekdayOf converts a stdlib weekday (Sunday=0) to the Monday=0 convention.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

// dayRelation classifies how two windows' day-or-date keys relate. The
// conflict algorithm is shared by both window variants; only this
// classification differs between them.
type dayRelation int

const (
	relOther dayRelation = iota // neither same nor adjacent: never a conflict
	relSame
	relFirstEarlier // adjacent, the first operand is the chronologically earlier day
	relFirstLater
)

// interval is the shared shape of windows and slots: a start time plus a
// duration-derived end time.
type interval interface {
	StartTime() TimeOfDay
	EndTime(skipBoundaries bool) TimeOfDay
}

// intervalsConflict is the single canonical overlap check.
//
// Same day: half-open overlap using boundary-skipped end times, so a window
// ending exactly at midnight compares as 24:00 rather than wrapping to 00:00.
// Adjacent days: recompute ends without skipping; an unskipped end at or
// before its own start signals midnight rollover, and the earlier day's
// rolled-over tail conflicts with the later day iff the later start precedes
// that tail's end. Exact touching is never a conflict.
func intervalsConflict(a, b interval, rel dayRelation) bool {
	switch rel {
	case relSame:
		return a.StartTime().Before(b.EndTime(true)) && b.StartTime().Before(a.EndTime(true))
	case relFirstEarlier:
		return crossesMidnightInto(a, b)
	case relFirstLater:
		return crossesMidnightInto(b, a)
	default:
		return false
	}
}

// crossesMidnightInto reports whether earlier's past-midnight tail overlaps
// later's window on the following day.
func crossesMidnightInto(earlier, later interval) bool {
	end := earlier.EndTime(false)
	if end.After(earlier.StartTime()) {
		return false // stayed within its own day
	}
	return later.StartTime().Before(end)
}

// WeeklyWindow is a mentor's recurring weekly availability window.
type WeeklyWindow struct {
	ID      uuid.UUID
	Day     Weekday
	Start   TimeOfDay
	Minutes int
}

// NewWeeklyWindow validates the weekday and duration bounds.
func NewWeeklyWindow(day Weekday, start TimeOfDay, minutes int) (WeeklyWindow, error) {
	if day < 0 || day > 6 {
		return WeeklyWindow{}, fmt.Errorf("%w: got %d", ErrInvalidWeekday, int(day))
	}
	if minutes < MinWindowMinutes || minutes > MaxWindowMinutes {
		return WeeklyWindow{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, minutes)
	}
	return WeeklyWindow{Day: day, Start: start, Minutes: minutes}, nil
}

func (w WeeklyWindow) StartTime() TimeOfDay { return w.Start }

// EndTime is Start + Minutes. With skipBoundaries the hour may exceed 23
// for windows that roll past midnight.
func (w WeeklyWindow) EndTime(skipBoundaries bool) TimeOfDay {
	return w.Start.AddMinutes(w.Minutes, skipBoundaries)
}

// TimeInMinutes returns the window length.
func (w WeeklyWindow) TimeInMinutes() int { return w.Minutes }

// ConflictsWith reports whether the two recurring windows overlap on any
// weekday, including a window spilling past midnight into the next weekday
// (Sunday into Monday wraps across the week boundary).
func (w WeeklyWindow) ConflictsWith(other WeeklyWindow) bool {
	return intervalsConflict(w, other, w.relationTo(other))
}

func (w WeeklyWindow) relationTo(other WeeklyWindow) dayRelation {
	if w.Day == other.Day {
		return relSame
	}
	diff := int(w.Day) - int(other.Day)
	if diff < 0 {
		diff = -diff
	}
	if diff != 1 && diff != 6 {
		return relOther
	}
	// diff==6 means Sunday/Monday adjacency: Sunday is the earlier day.
	earlier := int(w.Day) < int(other.Day)
	if diff == 6 {
		earlier = w.Day == 6
	}
	if earlier {
		return relFirstEarlier
	}
	return relFirstLater
}

// Describe renders the window as "monday [22:00 - 01:00]" using the
// unskipped end time, matching what users see in conflict messages.
func (w WeeklyWindow) Describe() string {
	return fmt.Sprintf("%s [%s - %s]", w.Day, w.Start, w.EndTime(false))
}

// DateWindow is a date-specific availability exception. When any exception
// exists for a calendar date it replaces every recurring window for that
// date.
type DateWindow struct {
	ID      uuid.UUID
	Date    time.Time // calendar date, midnight UTC, no time component
	Start   TimeOfDay
	Minutes int
}

// NewDateWindow validates the duration bounds and normalizes the date to
// a midnight-UTC day value.
func NewDateWindow(date time.Time, start TimeOfDay, minutes int) (DateWindow, error) {
	if minutes < MinWindowMinutes || minutes > MaxWindowMinutes {
		return DateWindow{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, minutes)
	}
	return DateWindow{Date: DateOnly(date), Start: start, Minutes: minutes}, nil
}

func (w DateWindow) StartTime() TimeOfDay { return w.Start }

func (w DateWindow) EndTime(skipBoundaries bool) TimeOfDay {
	return w.Start.AddMinutes(w.Minutes, skipBoundaries)
}

func (w DateWindow) TimeInMinutes() int { return w.Minutes }

// ConflictsWith reports whether the two exceptions overlap, including a
// window spilling past midnight into the next calendar date.
func (w DateWindow) ConflictsWith(other DateWindow) bool {
	return intervalsConflict(w, other, w.relationTo(other))
}

func (w DateWindow) relationTo(other DateWindow) dayRelation {
	switch DaysBetween(w.Date, other.Date) {
	case 0:
		return relSame
	case 1: // other is the next day, so w is earlier
		return relFirstEarlier
	case -1:
		return relFirstLater
	default:
		return relOther
	}
}

// Describe renders the window as "2025-03-10 [22:00 - 01:00]".
func (w DateWindow) Describe() string {
	return fmt.Sprintf("%s [%s - %s]", w.Date.Format(time.DateOnly), w.Start, w.EndTime(false))
}

// DateOnly strips the time component, keeping the civil date as observed in
// the value's own location, re-anchored at midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same civil date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the signed number of whole days from a to b
// (positive when a is earlier).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)) / (24 * time.Hour))
}
