package domain

import "errors"

var (
	// ErrNotFound - session identifier does not resolve in the store.
	ErrNotFound = errors.New("session not found")

	// ErrVersionConflict - optimistic save lost the race against a
	// concurrent writer.
	ErrVersionConflict = errors.New("version conflict")

	// ErrSeatOutOfRange - multiplayer current player index resolves
	// outside the seat list. This cannot happen under the rotation
	// invariant and indicates corrupted state.
	ErrSeatOutOfRange = errors.New("current player index out of range")
)

// ValidationError rejects malformed input before any state is mutated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
