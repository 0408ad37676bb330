package services

import "errors"

// Failure classes surfaced to handlers. Every service error either is one of
// these (possibly wrapped with detail via fmt.Errorf and %w) or maps to a 500.
var (
	ErrValidation           = errors.New("invalid input")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrDuplicateApplication = errors.New("already applied to this listing")
)
