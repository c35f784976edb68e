package models

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the store endpoint or access key is
// unset or a known placeholder. Expected in local and demo environments.
var ErrNotConfigured = errors.New("delivery store is not configured")

// ErrTimeout is returned when a store call exceeds its deadline.
var ErrTimeout = errors.New("delivery store call timed out")

// ErrProductNotFound is returned when an operation targets an id the
// catalog does not contain.
var ErrProductNotFound = errors.New("product not found")

// RemoteError means the store was reachable but rejected the operation.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("delivery store rejected %s: %s", e.Op, e.Message)
}

// ValidationError means a precondition failed before any store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product %s: %s", e.Field, e.Reason)
}
