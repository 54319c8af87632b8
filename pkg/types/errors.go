package types

import (
	"errors"
	"fmt"
	"strings"
)

// Store lifecycle errors.
var (
	ErrStoreClosed     = errors.New("store is closed")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Entity errors. ErrDuplicateName is distinct from validation failure so
// batch import can treat a name collision as a skip rather than an error.
var (
	ErrNotFound      = errors.New("token not found")
	ErrDuplicateName = errors.New("token name already exists")
	ErrInvalidID     = errors.New("invalid token ID")
)

// ValidationError carries the collected field-level messages from a
// rejected add or update. The operation it aborted made no state change.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "token validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError wraps the collected messages, or returns nil when
// there are none.
func NewValidationError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DuplicateNameError reports which name collided. It unwraps to
// ErrDuplicateName so callers can match with errors.Is.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("token with name %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}
