package availability

import "time"

// Checker decides whether a concrete requested start instant is bookable
// against a mentor's persisted schedule. All inputs are in the UTC storage
// frame; the caller loads exceptions and recurring windows for the request
// date (and its neighbors) plus the PENDING/ACCEPTED sessions of both
// parties around it.
type Checker struct {
	SessionMinutes int
	Exceptions     []DateWindow
	Weekly         []WeeklyWindow
	Existing       []Slot
}

// CanBook reports whether [start, start+session) can be booked:
// no overlap with an existing session; then, if any exception exists for
// the request's date, the request must fit fully inside one of them
// (exceptions replace recurring windows for that date outright); otherwise
// it must fit inside a recurring window for the request's weekday or the
// previous weekday's window rolling past midnight into it.
func (c Checker) CanBook(start time.Time) bool {
	utc := start.UTC()
	candidate := Slot{
		Date:    DateOnly(utc),
		Start:   TimeOfDay{Hour: utc.Hour(), Minute: utc.Minute()},
		Minutes: c.SessionMinutes,
	}

	for _, s := range c.Existing {
		if candidate.ConflictsWith(s) {
			return false
		}
	}

	var sameDate []DateWindow
	for _, ex := range c.Exceptions {
		if SameDate(ex.Date, utc) {
			sameDate = append(sameDate, ex)
		}
	}
	if len(sameDate) > 0 {
		for _, ex := range sameDate {
			if candidate.LiesWithinDate(ex) {
				return true
			}
		}
		// Exceptions exist for the date but none fits: recurring windows
		// are not consulted.
		return false
	}

	for _, w := range c.Weekly {
		if candidate.LiesWithinWeekly(w) {
			return true
		}
	}
	return false
}
