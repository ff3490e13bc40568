// Package form drives one submission form through its lifecycle: edits go
// into an owned draft, submit validates it, and a valid draft is handed to
// the backend exactly once.
package form

import (
	"context"
	"errors"
	"maps"
	"sync"

	"photostudio/services/validation"
)

type State int

const (
	Editing State = iota
	Validating
	Submitting
	Succeeded
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// ErrSubmissionInFlight is returned by Set and Submit while a submission
// has not resolved.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// Draft is implemented by the request records a form edits.
type Draft[T any] interface {
	*T
	SetField(name, value string) error
}

type (
	ValidateFunc[T any] func(T) validation.Errors
	SubmitFunc[T any]   func(ctx context.Context, draft T) error
)

// Controller owns one form's draft. It is safe for concurrent use.
type Controller[T any, P Draft[T]] struct {
	mu       sync.Mutex
	draft    T
	errs     validation.Errors
	state    State
	lastErr  error
	validate ValidateFunc[T]
	submit   SubmitFunc[T]
}

func New[T any, P Draft[T]](validate ValidateFunc[T], submit SubmitFunc[T]) *Controller[T, P] {
	return &Controller[T, P]{
		errs:     validation.Errors{},
		validate: validate,
		submit:   submit,
	}
}

// Set updates one draft field and clears that field's error without
// re-validating. A form that already succeeded goes back to Editing.
func (c *Controller[T, P]) Set(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		return ErrSubmissionInFlight
	}
	if err := P(&c.draft).SetField(field, value); err != nil {
		return err
	}
	delete(c.errs, field)
	if c.state == Succeeded {
		c.state = Editing
	}
	return nil
}

// Submit validates the draft and, when it is valid, submits it once.
// It returns validation.Errors when the draft is invalid, the submitter's
// error when the submission fails, and ErrSubmissionInFlight when called
// again before the first call resolved. The draft is reset only after a
// successful submission.
func (c *Controller[T, P]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	c.state = Validating
	draft := c.draft
	if errs := c.validate(draft); !errs.Valid() {
		c.errs = errs
		c.state = Editing
		c.mu.Unlock()
		return errs
	}
	c.errs = validation.Errors{}
	c.lastErr = nil
	c.state = Submitting
	c.mu.Unlock()

	settled := false
	defer func() {
		if settled {
			return
		}
		// The submitter panicked; keep the draft and allow another try.
		c.mu.Lock()
		c.state = Editing
		c.mu.Unlock()
	}()

	err := c.submit(ctx, draft)
	settled = true

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		c.state = Editing
		return err
	}
	var zero T
	c.draft = zero
	c.state = Succeeded
	return nil
}

func (c *Controller[T, P]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns a copy of the current draft.
func (c *Controller[T, P]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Errors returns a copy of the field errors from the last submit, minus
// fields edited since.
func (c *Controller[T, P]) Errors() validation.Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.errs)
}

// LastError is the error of the last failed submission, cleared by the
// next valid submit.
func (c *Controller[T, P]) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
