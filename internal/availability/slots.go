package availability

import "time"

// Span is an absolute half-open time interval [Start, End).
type Span struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two half-open spans share any instant.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// IsEmpty reports whether the span holds no time at all.
func (s Span) IsEmpty() bool {
	return !s.Start.Before(s.End)
}

// SubtractBusy removes every busy interval from the open spans. A span
// fully covered by a busy interval disappears; a partially overlapped span
// is clipped or split into the up to two remaining pieces; disjoint pairs
// pass through untouched. Each busy interval is folded over the running
// remainder of the previous one.
func SubtractBusy(open []Span, busy []Span) []Span {
	remaining := open
	for _, b := range busy {
		if b.IsEmpty() {
			continue
		}
		next := make([]Span, 0, len(remaining)+1)
		for _, s := range remaining {
			if !s.Overlaps(b) {
				next = append(next, s)
				continue
			}
			if s.Start.Before(b.Start) {
				next = append(next, Span{Start: s.Start, End: b.Start})
			}
			if b.End.Before(s.End) {
				next = append(next, Span{Start: b.End, End: s.End})
			}
		}
		remaining = next
	}
	return remaining
}

// SliceStarts slices each free span into candidate start instants at
// step-minute increments, keeping only starts whose start+session still
// fits inside the span.
func SliceStarts(free []Span, sessionMinutes, stepMinutes int) []time.Time {
	session := time.Duration(sessionMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute
	if step <= 0 {
		step = session
	}

	var starts []time.Time
	for _, s := range free {
		for t := s.Start; !t.Add(session).After(s.End); t = t.Add(step) {
			starts = append(starts, t)
		}
	}
	return starts
}

// GenerateSlots computes the bookable start instants for one set of
// availability windows: subtract every busy interval, then slice what
// survives. Windows and busy intervals must already be resolved to
// absolute instants in one common zone.
func GenerateSlots(windows []Span, busy []Span, sessionMinutes, stepMinutes int) []time.Time {
	return SliceStarts(SubtractBusy(windows, busy), sessionMinutes, stepMinutes)
}
