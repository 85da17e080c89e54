package models

import "errors"

// Domain error sentinels. Repositories and services return these (possibly
// wrapped) so handlers can map them to HTTP statuses with errors.Is instead
// of matching on message text.
var (
	// ErrNotFound means a lookup by id matched nothing.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername means a signup collided with an existing username.
	// The database unique index is the sole authority for this condition.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown username and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidQuantity means a line item quantity was zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrMissingToken means the Authorization header was absent or not a
	// Bearer credential.
	ErrMissingToken = errors.New("authorization token missing")

	// ErrInvalidToken means the token failed verification: malformed, bad
	// signature, or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)
