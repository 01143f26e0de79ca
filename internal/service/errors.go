package service

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// ValidationError means a form field is not ready for submission. No
// persistence is attempted when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// ParseError means an amount string could not be turned into a decimal at
// commit time.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse amount %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse amount %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError means the referenced track no longer exists.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("track %s not found", e.ID)
}

// PersistenceError wraps a failed storage read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
