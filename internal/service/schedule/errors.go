package schedule

import "errors"

var (
	ErrServiceNotFound   = errors.New("mentor service not found")
	ErrWindowNotFound    = errors.New("availability window not found")
	ErrExceptionNotFound = errors.New("availability exception not found")
	ErrNotServiceOwner   = errors.New("service does not belong to this mentor")
	ErrUnknownTimezone   = errors.New("unknown IANA timezone")
)
