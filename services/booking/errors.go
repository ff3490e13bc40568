package booking

import (
	"errors"
	"fmt"
)

// ErrNoOwner is returned when a booking reaches the service without a
// resolved account.
var ErrNoOwner = errors.New("booking requires an authenticated user")

// InputError reports a request field the service cannot store.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
