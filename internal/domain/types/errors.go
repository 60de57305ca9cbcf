package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets an unknown member.
	ErrNotFound = errors.New("member not found")
	// ErrInvalidAmount is returned when an amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
)

// PersistenceError reports that the member document could not be read or
// written. For writes the in-memory table already holds the change.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s member data: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s member data %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
