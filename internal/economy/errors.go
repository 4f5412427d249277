package economy

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every policy parse failure.
var ErrInvalidInput = errors.New("invalid numeric input")

// InputError reports which policy field could not be parsed.
type InputError struct {
	Field string
	Input string
	Cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("economy: %v for %s: %q", ErrInvalidInput, e.Field, e.Input)
}

func (e *InputError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Cause}
}
