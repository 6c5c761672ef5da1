// Package common defines shared constants and sentinel errors used across
// client and server layers of SOS. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound never leaves the repository
	// layer: lookups report absence as a nil result.
	ErrorNotFound = errors.New("not found")
	ErrDataAccess = errors.New("data access error")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidArgument = errors.New("invalid argument")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
