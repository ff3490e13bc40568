package client

import (
	"errors"

	"photostudio/services/validation"
)

var (
	// ErrUnauthorized is returned when the booking endpoint rejects the
	// credential, or none was supplied.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSubmissionFailed matches every *SubmissionError.
	ErrSubmissionFailed = errors.New("submission failed")
)

// GenericFailureMessage is shown when the server gave no usable message.
const GenericFailureMessage = "Something went wrong. Please try again."

// SubmissionError is a failed request: a non-success status, or a
// transport failure when Status is zero.
type SubmissionError struct {
	Status  int
	Message string
	// Fields holds per-field errors when the server returned them.
	Fields validation.Errors
	Err    error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
