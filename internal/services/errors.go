package services

import "errors"

// Error taxonomy surfaced to callers. Handlers map these to HTTP statuses.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store failure")
)
