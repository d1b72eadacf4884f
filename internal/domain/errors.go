package domain

import "errors"

// Sentinel errors shared by services, repositories and the HTTP layer.
var (
	// ErrUnauthorized is returned when no usable bearer token was presented.
	ErrUnauthorized = errors.New("not authorized")
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for any other token verification failure.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrInvalidCredentials is returned by login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")

	// ErrInvalidReference is returned when a named role or event type does not exist.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrConflict is returned when an operation would break a uniqueness or ownership constraint.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput is returned when the request is invalid (e.g. an empty role list).
	ErrInvalidInput = errors.New("invalid input")
)
