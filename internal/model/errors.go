package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrSelfDelete     = errors.New("cannot delete own account")

	// Result errors
	ErrInvalidGameType = errors.New("invalid game type")
)
