package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUsername indicates that a registration used a username that already exists.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials indicates that the username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound indicates that an entry referenced a user that does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports an out-of-range or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
