package store

import "errors"

var (
	// ErrNotFound is returned when a queried row does not exist locally.
	ErrNotFound = errors.New("row not found in local store")

	// ErrAlreadyExists is returned when an insert violates a local unique
	// constraint, e.g. a second rating for the same (restaurant, user) pair.
	ErrAlreadyExists = errors.New("row already exists in local store")
)
