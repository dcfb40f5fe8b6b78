package store

import "errors"

// ErrValidation matches every ValidationError
var ErrValidation = errors.New("validation failed")

// ValidationError reports rejected user input. No state changes when it is
// returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " must not be empty"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
