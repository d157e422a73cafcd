package user

import "errors"

var (
	// ErrUserNotFound is returned when no account matches the lookup
	ErrUserNotFound = errors.New("user not found")
)
