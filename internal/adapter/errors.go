package adapter

import "errors"

// Sentinel errors shared by all gateway implementations. Callers match them
// with errors.Is; the concrete transport error stays wrapped underneath.
var (
	// ErrAlreadyExists is a remote uniqueness violation, e.g. a second
	// rating by the same user for the same restaurant. Terminal: retrying a
	// guaranteed duplicate is pointless.
	ErrAlreadyExists = errors.New("row already exists in remote store")

	// ErrNotFound is a remote "no such row".
	ErrNotFound = errors.New("row not found in remote store")

	// ErrUnavailable is a transient remote failure (timeout, connection
	// refused, 5xx). Operations failing with it are worth retrying.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrUnauthorized is an authentication/authorization rejection.
	ErrUnauthorized = errors.New("remote store rejected credentials")
)
