package bandcamp

import "errors"

// Common fancollection API errors.
var (
	// ErrNotFound is returned when the fan or endpoint does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the identity cookie is missing or stale.
	ErrUnauthorized = errors.New("unauthorized — check your identity cookie")
	// ErrForbidden is returned when the fan's collection is not visible to
	// the provided identity.
	ErrForbidden = errors.New("forbidden — collection not visible with this identity")
)
