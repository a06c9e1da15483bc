package domain

import "errors"

// Expected, user-facing outcomes. Everything else that bubbles up from the
// store is treated as an internal error by the delivery layer.
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
