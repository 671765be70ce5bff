package service

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail matches any *DuplicateEmailError via errors.Is.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// Callers cannot tell the two cases apart.
	ErrInvalidCredentials = errors.New("Invalid login!")

	// ErrInternal hides store and hashing failures from callers; the detail is
	// logged where it happens.
	ErrInternal = errors.New("internal error")
)

// DuplicateEmailError reports a registration for an email that is taken.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("User with email '%s' already exists", e.Email)
}

func (e *DuplicateEmailError) Is(target error) bool {
	return target == ErrDuplicateEmail
}
