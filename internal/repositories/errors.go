package repositories

import "errors"

var (
	// ErrRecordNotFound is returned when no row matches the lookup.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)
