// Package common defines shared constants and sentinel errors used across
// the layers of userboard. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already in use")

	// Service-level errors.
	ErrInternal           = errors.New("internal error")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect password")

	// Validation errors.
	ErrWeakPassword = errors.New("password must contain at least 8 characters")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
