package user

import "errors"

var (
	// ErrEmailTaken: another user already owns the normalized email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrUserNotFound: no user row for the given key.
	ErrUserNotFound = errors.New("user not found")
)
