package offering

import "errors"

var (
	ErrServiceNotFound    = errors.New("mentor service not found")
	ErrNotServiceOwner    = errors.New("service does not belong to this mentor")
	ErrInvalidKind        = errors.New("unknown service kind")
	ErrInvalidDuration    = errors.New("session duration must be between 10 and 360 minutes")
	ErrHasPendingRequests = errors.New("service has pending session requests")
)
