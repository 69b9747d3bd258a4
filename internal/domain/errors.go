package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrInvalidLead = errors.New("invalid lead")
	ErrNotFound    = errors.New("requested resource not found")
)
