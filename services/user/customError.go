package user

import (
	"errors"

	"photostudio/services/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// RegistrationError carries the field errors of a rejected registration.
type RegistrationError struct {
	Fields validation.Errors
}

func (e *RegistrationError) Error() string {
	return e.Fields.Error()
}
