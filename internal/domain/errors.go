package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusConflict signals a compare-and-set guard failure: the
	// entity was no longer in the expected status at commit time.
	ErrStatusConflict = errors.New("status changed concurrently")

	// ErrInvalidTransition signals a transition not present in the
	// allowed-transition table for the entity.
	ErrInvalidTransition = errors.New("illegal status transition")
)

// ValidationError rejects malformed input before any repository write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
