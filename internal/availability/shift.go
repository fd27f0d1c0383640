package availability

import (
	"time"
)

// StorageZoneName is the canonical zone all persisted dates and start times
// are normalized to.
const StorageZoneName = "Etc/UTC"

// StorageZone loads the canonical storage location.
func StorageZone() *time.Location {
	loc, err := time.LoadLocation(StorageZoneName)
	if err != nil {
		// Etc/UTC is part of every tzdata shipment; fall back for stripped
		// environments rather than failing a pure computation.
		return time.UTC
	}
	return loc
}

// shiftCivil composes a calendar date and wall-clock time in the from zone,
// converts the instant to the to zone, and splits it back into a date and
// time-of-day. The date rolls to the previous or next calendar day when the
// shift crosses midnight.
//
// A civil time that is skipped or repeated by a DST transition resolves to
// whatever time.Date normalization picks; minute precision only.
func shiftCivil(date time.Time, t TimeOfDay, from, to *time.Location) (time.Time, TimeOfDay) {
	y, m, d := date.Date()
	instant := time.Date(y, m, d, t.Hour, t.Minute, 0, 0, from).In(to)
	return DateOnly(instant), TimeOfDay{Hour: instant.Hour(), Minute: instant.Minute()}
}

// InZone returns a copy of the slot shifted from one zone to another.
// The receiver is left untouched; callers that need the pre-shift value
// simply keep it.
func (s Slot) InZone(from, to *time.Location) Slot {
	out := s
	out.Date, out.Start = shiftCivil(s.Date, s.Start, from, to)
	return out
}

// InZone returns a copy of the exception shifted between zones, rolling the
// date when the shift crosses midnight.
func (w DateWindow) InZone(from, to *time.Location) DateWindow {
	out := w
	out.Date, out.Start = shiftCivil(w.Date, w.Start, from, to)
	return out
}

// weeklyReference is a fixed Monday used to anchor recurring windows when
// shifting them between zones; any week works at minute precision since the
// shift uses the zones' current standard offsets for that week.
var weeklyReference = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// InZone returns a copy of the recurring window shifted between zones. The
// weekday is recomputed from the shifted instant, since a shift can move a
// window onto the adjacent weekday.
func (w WeeklyWindow) InZone(from, to *time.Location) WeeklyWindow {
	out := w
	anchor := weeklyReference.AddDate(0, 0, int(w.Day))
	date, start := shiftCivil(anchor, w.Start, from, to)
	out.Start = start
	out.Day = WeekdayOf(date.Weekday())
	return out
}

// At composes the window's start on a concrete calendar date in loc,
// returning the absolute start and end instants.
func (w WeeklyWindow) At(date time.Time, loc *time.Location) (start, end time.Time) {
	y, m, d := date.Date()
	start = time.Date(y, m, d, w.Start.Hour, w.Start.Minute, 0, 0, loc)
	return start, start.Add(time.Duration(w.Minutes) * time.Minute)
}

// At returns the exception's absolute start and end instants in loc.
func (w DateWindow) At(loc *time.Location) (start, end time.Time) {
	y, m, d := w.Date.Date()
	start = time.Date(y, m, d, w.Start.Hour, w.Start.Minute, 0, 0, loc)
	return start, start.Add(time.Duration(w.Minutes) * time.Minute)
}

// At returns the slot's absolute start and end instants in loc.
func (s Slot) At(loc *time.Location) (start, end time.Time) {
	y, m, d := s.Date.Date()
	start = time.Date(y, m, d, s.Start.Hour, s.Start.Minute, 0, 0, loc)
	return start, start.Add(time.Duration(s.Minutes) * time.Minute)
}
