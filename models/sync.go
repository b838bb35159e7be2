package models

import (
	"encoding/json"
	"time"
)

// SyncOptions narrows a sync pass. The zero value means "push the queue and
// pull every entity type".
type SyncOptions struct {
	// ForceFullSync pulls every entity type regardless of the per-entity
	// gates below.
	ForceFullSync bool `json:"force_full_sync"`

	// MaxRetries overrides the drain retry ceiling. Zero means "use the
	// engine default".
	MaxRetries int `json:"max_retries"`

	// Per-entity pull gates. A nil gate counts as enabled.
	SyncRestaurants *bool `json:"sync_restaurants,omitempty"`
	SyncMenuItems   *bool `json:"sync_menu_items,omitempty"`
	SyncRatings     *bool `json:"sync_ratings,omitempty"`
}

// PullEnabled reports whether the given gate allows pulling, honouring
// ForceFullSync.
func (o SyncOptions) PullEnabled(gate *bool) bool {
	if o.ForceFullSync {
		return true
	}
	return gate == nil || *gate
}

// SyncResult is the aggregated outcome of one sync pass. Guard rejections
// (sync already running, offline) are reported through the same shape with
// Success=false, never as returned errors.
type SyncResult struct {
	Success     bool      `json:"success"`
	SyncedCount int       `json:"synced_count"`
	FailedCount int       `json:"failed_count"`
	Errors      []string  `json:"errors,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// ConflictKind classifies which parts of a row diverged.
type ConflictKind string

const (
	ConflictValue    ConflictKind = "value"
	ConflictMetadata ConflictKind = "metadata"
	ConflictBoth     ConflictKind = "both"
)

// Resolution is the explicit decision applied to a conflict.
type Resolution string

const (
	KeepLocal  Resolution = "keep_local"
	KeepRemote Resolution = "keep_remote"
	Merge      Resolution = "merge"
)

// Conflict is an unresolved divergence between a local row that was believed
// synced and an incoming remote row. It lives in the sync engine until
// resolved; it is never dropped silently.
type Conflict struct {
	Table           EntityTable     `json:"table"`
	EntityID        string          `json:"entity_id"`
	Local           json.RawMessage `json:"local"`
	Remote          json.RawMessage `json:"remote"`
	LocalUpdatedAt  time.Time       `json:"local_updated_at"`
	RemoteUpdatedAt time.Time       `json:"remote_updated_at"`
	Kind            ConflictKind    `json:"kind"`
	Resolution      Resolution      `json:"resolution,omitempty"`
	DetectedAt      time.Time       `json:"detected_at"`
}
