package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for harvest-level failures.
var (
	ErrInvalidRequest = errors.New("invalid harvest request")
	ErrNavigation     = errors.New("navigation failed")
	ErrPersistence    = errors.New("persistence failed")
	ErrMissingBody    = errors.New("card has no body text")
)

// RequestError names the offending request field.
type RequestError struct {
	Field string
	Value string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s (value=%q)", ErrInvalidRequest, e.Field, e.Value)
}

func (e *RequestError) Unwrap() error { return ErrInvalidRequest }

// NewRequestError creates a RequestError.
func NewRequestError(field, value string) *RequestError {
	return &RequestError{Field: field, Value: value}
}

// NavigationError is fatal for a harvest. No extraction happens after it.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrNavigation, e.URL, e.Err)
}

func (e *NavigationError) Is(target error) bool { return target == ErrNavigation }

func (e *NavigationError) Unwrap() error { return e.Err }

// CardExtractionError describes a card that was skipped. It never aborts a harvest.
type CardExtractionError struct {
	Index int
	Err   error
}

func (e *CardExtractionError) Error() string {
	return fmt.Sprintf("card %d: %v", e.Index, e.Err)
}

func (e *CardExtractionError) Unwrap() error { return e.Err }

// PersistenceError is returned together with a complete in-memory result.
type PersistenceError struct {
	Sink string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Sink, e.Err)
}

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

func (e *PersistenceError) Unwrap() error { return e.Err }
