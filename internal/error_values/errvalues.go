package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidRequest   = errors.New("validation error")

	ErrNoData = errors.New("no problem logs to export")

	// Sync failures. Callers branch on these with errors.Is.
	ErrNotConfigured   = errors.New("commit feed is not configured")
	ErrFeedUnavailable = errors.New("commit feed unavailable")
)
