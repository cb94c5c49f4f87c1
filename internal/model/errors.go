package model

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a record that does not exist and one owned by
// another user, so existence never leaks across owners.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a category name collides with another
// category of the same user.
var ErrDuplicateName = errors.New("category name already exists")

// ErrDuplicateEmail is returned when registering with an email that is
// already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidCredentials is returned on a failed login or password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a malformed required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validationf builds a ValidationError for the given field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
