package service

import "errors"

var (
	// ErrSyncInProgress is reported inside a SyncResult when a sync call
	// arrives while another pass is running. Concurrent calls are rejected,
	// never queued.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrOffline is reported inside a SyncResult when the network monitor
	// does not see the device online.
	ErrOffline = errors.New("device is offline")

	// ErrConflictNotFound is returned by ResolveConflict for an unknown
	// conflict key.
	ErrConflictNotFound = errors.New("no unresolved conflict for entity")

	// ErrInvalidStars rejects a rating outside the 1..5 range.
	ErrInvalidStars = errors.New("stars must be between 1 and 5")
)
