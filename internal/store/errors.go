package store

import "errors"

var (
	// ErrEmailTaken is returned by Register when another user already holds
	// the candidate email (case-sensitive comparison).
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login when no user matches both
	// email and password exactly.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
