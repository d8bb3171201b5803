package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientBank is returned when the bank holds fewer questions than a
	// session requires. Short sessions are rejected outright, never served.
	ErrInsufficientBank = errors.New("not enough questions in the bank")
	// ErrGenerationExtraction is returned when the generator's response contains
	// no parseable question object.
	ErrGenerationExtraction = errors.New("no usable question in generator response")
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("game session not found")
)

// ValidationError rejects a question draft whose shape is malformed. The bank
// is never touched by a draft that fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question: %s %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
