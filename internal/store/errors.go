package store

import "errors"

var (
	// ErrNotFound is returned when a user, group or conversation lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when signing up (or renaming) to an email
	// already owned by another user.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrMalformed marks persisted data that failed to decode.
	ErrMalformed = errors.New("malformed persisted data")
	// ErrInvalidInput is returned for empty required fields and unknown enum values.
	ErrInvalidInput = errors.New("invalid input")
)

func isMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}
