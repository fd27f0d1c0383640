package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidName     = errors.New("name must be between 1 and 100 characters")
	ErrInvalidTimezone = errors.New("invalid timezone")
)
