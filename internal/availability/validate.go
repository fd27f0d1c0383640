package availability

// ValidateWeeklyWindow checks a new or edited recurring window against the
// service session length and a candidate set of existing windows. The
// candidate set may be over-broad: pairs on non-adjacent weekdays are never
// reported as conflicts. It fails on the first conflict found.
func ValidateWeeklyWindow(candidate WeeklyWindow, sessionMinutes int, existing []WeeklyWindow) error {
	if candidate.Minutes < sessionMinutes {
		return &WindowTooShortError{Window: candidate.Describe(), SessionMinutes: sessionMinutes}
	}
	for _, w := range existing {
		if candidate.ConflictsWith(w) {
			return &ConflictError{Window: candidate.Describe(), Existing: w.Describe()}
		}
	}
	return nil
}

// ValidateDateWindow is ValidateWeeklyWindow for exception windows;
// adjacency is calendar-date distance of one day.
func ValidateDateWindow(candidate DateWindow, sessionMinutes int, existing []DateWindow) error {
	if candidate.Minutes < sessionMinutes {
		return &WindowTooShortError{Window: candidate.Describe(), SessionMinutes: sessionMinutes}
	}
	for _, w := range existing {
		if candidate.ConflictsWith(w) {
			return &ConflictError{Window: candidate.Describe(), Existing: w.Describe()}
		}
	}
	return nil
}

// ValidateWeeklySet validates a batch of new recurring windows against each
// other, the way a full weekly schedule is submitted on service creation:
// each window is checked against every window accepted before it.
func ValidateWeeklySet(windows []WeeklyWindow, sessionMinutes int) error {
	accepted := make([]WeeklyWindow, 0, len(windows))
	for _, w := range windows {
		if err := ValidateWeeklyWindow(w, sessionMinutes, accepted); err != nil {
			return err
		}
		accepted = append(accepted, w)
	}
	return nil
}

// ValidateDateSet is ValidateWeeklySet for exception windows.
func ValidateDateSet(windows []DateWindow, sessionMinutes int) error {
	accepted := make([]DateWindow, 0, len(windows))
	for _, w := range windows {
		if err := ValidateDateWindow(w, sessionMinutes, accepted); err != nil {
			return err
		}
		accepted = append(accepted, w)
	}
	return nil
}
