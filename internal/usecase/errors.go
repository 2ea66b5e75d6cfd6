package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// invalidInput wraps a domain validation failure so callers can match ErrInvalidInput
// and still recover the field list with errors.As.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func invalidField(field, message string) error {
	return invalidInput(validation.Errors{{Field: field, Message: message}})
}
