package domain

import "errors"

var (
	ErrInvalidName    = errors.New("invalid name")
	ErrMissingPhone   = errors.New("missing phone")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrMissingService = errors.New("missing service")
)

// ValidationError is a user input fault. Message is safe to show to the customer.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
