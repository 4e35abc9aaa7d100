package storage

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a unique value is already taken.
	ErrConflict = errors.New("already exists")

	// ErrHasPayments is returned when deleting a stakeholder that still has
	// payments recorded against it.
	ErrHasPayments = errors.New("stakeholder has payments")

	// ErrTransient is returned when the store is busy or its schema is being
	// upgraded. The operation may succeed if retried.
	ErrTransient = errors.New("store temporarily unavailable")
)
