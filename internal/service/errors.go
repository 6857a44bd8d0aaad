package service

import "errors"

// Terminal, user-visible outcomes of the credential and session operations.
// Storage failures are not part of this taxonomy; they propagate wrapped and
// surface as generic internal errors.
var (
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("incorrect email or password")
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired refresh token")
	ErrUserNotFound          = errors.New("user not found")
	ErrForbidden             = errors.New("insufficient privileges")
	ErrBanned                = errors.New("user is banned")
)
