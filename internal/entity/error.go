package entity

import (
	"errors"
	"fmt"
)

var (
	ErrDataNotFound       = errors.New("data not found")
	ErrConflictingData    = errors.New("data conflicts with existing data in unique column")
	ErrTireUnavailable    = errors.New("Tire is not available")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrConfigPathNotSet   = errors.New("CONFIG_PATH not set and -config flag not provided")
)

// ValidationError is a workflow-level argument failure. It names the
// offending field so transport can surface it, and its message is shown
// to the caller verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
