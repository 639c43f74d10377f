package services

import "errors"

// Common service-level errors
var (
	// Lookup and ownership errors
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("resource belongs to another user")
	ErrInvalidReference = errors.New("invalid reference")

	// Auth errors
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidUserInfo     = errors.New("invalid user information")
	ErrSessionNotFound     = errors.New("session not found")
	ErrGoogleLoginDisabled = errors.New("google login is not configured")

	// Document errors
	ErrInvalidContent = errors.New("file content is not valid base64")
)
