// Package common defines shared constants and sentinel errors used across
// the server, the gRPC API and the operator CLI. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Identity resolution errors.
	ErrConflict           = errors.New("user already exists with this email or username")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidAssertion   = errors.New("invalid identity assertion")

	// Bearer token errors.
	ErrTokenExpired   = errors.New("token expired")
	ErrMalformedToken = errors.New("invalid token")

	// Password reset errors.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

	// Gate errors.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access denied")
)
