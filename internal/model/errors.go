package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCheckoutFailed     = errors.New("checkout failed")
	ErrPersistence        = errors.New("persistence failure")
	ErrInvalidSession     = errors.New("invalid session")
)

var (
	ErrDuplicateUsername = fmt.Errorf("%w: username already taken", ErrDuplicateAccount)
	ErrDuplicateEmail    = fmt.Errorf("%w: email already registered", ErrDuplicateAccount)
)

// ValidationError reports a user-correctable input problem.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CheckoutError carries the reason a checkout session could not be created.
type CheckoutError struct {
	Reason string
	Err    error
}

func NewCheckoutError(reason string, err error) *CheckoutError {
	return &CheckoutError{Reason: reason, Err: err}
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *CheckoutError) Is(target error) bool {
	return target == ErrCheckoutFailed
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}
