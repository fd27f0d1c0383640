package availability

import (
	"errors"
	"fmt"
)

var (
	// ErrBadTimeFormat marks malformed time-of-day input.
	ErrBadTimeFormat = errors.New("time must be HH:MM in 24-hour format")

	// ErrInvalidDuration marks a window duration outside the allowed range.
	ErrInvalidDuration = fmt.Errorf("duration must be between %d and %d minutes", MinWindowMinutes, MaxWindowMinutes)

	// ErrInvalidWeekday marks a weekday outside Monday(0)..Sunday(6).
	ErrInvalidWeekday = errors.New("day of week must be between 0 (Monday) and 6 (Sunday)")
)

// ConflictError is returned when a window overlaps another one. It names
// both ranges so the client can correct the schedule.
type ConflictError struct {
	Window   string // human-readable day/date + range of the new or edited window
	Existing string // same for the window it collides with
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s overlaps with %s", e.Window, e.Existing)
}

// WindowTooShortError is returned when a window cannot hold a single
// session of the service's configured length.
type WindowTooShortError struct {
	Window         string
	SessionMinutes int
}

func (e *WindowTooShortError) Error() string {
	return fmt.Sprintf("invalid time window %s: shorter than the session time of %d minutes", e.Window, e.SessionMinutes)
}
