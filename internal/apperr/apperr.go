// Package apperr defines the error taxonomy shared by the services:
// not-found, store-rejected, and upstream failures. Validation problems are
// not errors; they travel as ValidationErrors data so callers can render
// per-field messages.
package apperr

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

type UpstreamError struct {
	Service string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("upstream %s: status %d", e.Service, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ValidationErrors maps field names to human-readable messages. An empty map
// means the input is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Valid() bool { return len(v) == 0 }
