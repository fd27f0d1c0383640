package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Slot is a concrete time interval on a specific calendar date: either an
// existing session reservation or a candidate being validated for booking.
type Slot struct {
	ID      uuid.UUID
	Date    time.Time // calendar date, midnight UTC
	Start   TimeOfDay
	Minutes int
}

// NewSlot normalizes the date; duration bounds are the session-request
// bounds, identical to the window bounds.
func NewSlot(date time.Time, start TimeOfDay, minutes int) (Slot, error) {
	if minutes < MinWindowMinutes || minutes > MaxWindowMinutes {
		return Slot{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, minutes)
	}
	return Slot{Date: DateOnly(date), Start: start, Minutes: minutes}, nil
}

func (s Slot) StartTime() TimeOfDay { return s.Start }

func (s Slot) EndTime(skipBoundaries bool) TimeOfDay {
	return s.Start.AddMinutes(s.Minutes, skipBoundaries)
}

// ConflictsWith reports whether two dated slots overlap, using the same
// same-date / adjacent-date algorithm as the window variants.
func (s Slot) ConflictsWith(other Slot) bool {
	return intervalsConflict(s, other, s.relationTo(other))
}

func (s Slot) relationTo(other Slot) dayRelation {
	switch DaysBetween(s.Date, other.Date) {
	case 0:
		return relSame
	case 1:
		return relFirstEarlier
	case -1:
		return relFirstLater
	default:
		return relOther
	}
}

// LiesWithinDate reports whether the slot's [start, end) fits fully inside
// the exception window. A slot in the early morning may belong to the
// previous date's window when that window rolls past midnight; both sides
// of the comparison are then shifted forward 24h so they share one frame.
func (s Slot) LiesWithinDate(w DateWindow) bool {
	switch DaysBetween(w.Date, s.Date) {
	case 0:
		return fitsWithin(s.Start, s.EndTime(true), w.Start, w.EndTime(true))
	case 1: // window is on the previous date
		return fitsWithin(
			s.Start.AddMinutes(minutesPerDay, true),
			s.EndTime(true).AddMinutes(minutesPerDay, true),
			w.Start, w.EndTime(true),
		)
	default:
		return false
	}
}

// LiesWithinWeekly is LiesWithinDate for recurring windows, keyed by the
// slot date's weekday instead of the calendar date.
func (s Slot) LiesWithinWeekly(w WeeklyWindow) bool {
	day := WeekdayOf(s.Date.Weekday())
	switch w.Day {
	case day:
		return fitsWithin(s.Start, s.EndTime(true), w.Start, w.EndTime(true))
	case day.Prev():
		return fitsWithin(
			s.Start.AddMinutes(minutesPerDay, true),
			s.EndTime(true).AddMinutes(minutesPerDay, true),
			w.Start, w.EndTime(true),
		)
	default:
		return false
	}
}

// fitsWithin reports [start, end) ⊆ [wStart, wEnd) over boundary-skipped
// values in a shared same-day frame.
func fitsWithin(start, end, wStart, wEnd TimeOfDay) bool {
	return !start.Before(wStart) && !end.After(wEnd)
}

// Describe renders the slot as "2025-03-10 [09:00 - 10:00]".
func (s Slot) Describe() string {
	return fmt.Sprintf("%s [%s - %s]", s.Date.Format(time.DateOnly), s.Start, s.EndTime(false))
}
