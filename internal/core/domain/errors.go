package domain

import (
	"errors"
	"fmt"
)

// Error classes. Specific errors wrap one of these so the transport layer
// can pick a status code with errors.Is.
var (
	ErrMalformedRequest    = errors.New("malformed request")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrAuthFailure         = errors.New("authentication failed")
	ErrNotFound            = errors.New("not found")
	ErrTooManyAttempts     = errors.New("too many login attempts")
)

var (
	ErrUserExists         = fmt.Errorf("%w: username already exists", ErrConstraintViolation)
	ErrAuthorNotFound     = fmt.Errorf("%w: author does not exist", ErrConstraintViolation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthFailure)
	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrPostNotFound       = fmt.Errorf("%w: post", ErrNotFound)
)

// Malformed wraps ErrMalformedRequest with a client-facing reason.
func Malformed(reason string) error {
	return &MalformedError{Reason: reason}
}

// MalformedError carries the reason a request was rejected before reaching the store.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string { return e.Reason }

func (e *MalformedError) Unwrap() error { return ErrMalformedRequest }
