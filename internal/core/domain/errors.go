package domain

import "errors"

// Error messages double as the response phrases sent to callers, so their
// wording is part of the API surface.
var (
	ErrUsernameTaken      = errors.New("username is already in use")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrPasswordLength     = errors.New("password must be between 8 and 100 characters long")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrTweetNotFound      = errors.New("tweet not found")
	ErrEmptyContent       = errors.New("content must not be empty")
)
