package onboarding

import (
	"errors"
	"fmt"
)

// ErrValidation indicates a malformed answer submission.
type ErrValidation struct {
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid answer: %s", e.Reason)
}

// ErrCollaborator indicates a taxonomy, routing, or profile-store call
// failed. Retryable: the next attempt may reach a healthy collaborator.
type ErrCollaborator struct {
	Op  string
	Err error
}

func (e *ErrCollaborator) Error() string {
	return fmt.Sprintf("collaborator %s: %v", e.Op, e.Err)
}

func (e *ErrCollaborator) Unwrap() error { return e.Err }

// ErrPersistence indicates the conversation append or cursor write
// failed. The caller should resubmit the same answer.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error { return e.Err }

// IsRetryable reports whether the error is worth retrying as-is.
func IsRetryable(err error) bool {
	var c *ErrCollaborator
	return errors.As(err, &c)
}
