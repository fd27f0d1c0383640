package booking

import "errors"

var (
	ErrServiceNotFound = errors.New("mentor service not found")
	ErrUnavailableSlot = errors.New("slot is outside the mentor's availability or already taken")
	ErrDuplicateSlot   = errors.New("a request for this slot already exists")
	ErrSessionNotFound = errors.New("session request not found")
	ErrNotParticipant  = errors.New("user is not a participant of this session")
	ErrAlreadyDecided  = errors.New("session request has already been decided")
	ErrUnknownTimezone = errors.New("unknown IANA timezone")
)
