package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EntityTable identifies which mirrored collection a pending operation
// targets. The set is closed; an unknown value in a queue entry indicates a
// corrupted queue and is treated as terminal by the drain loop.
type EntityTable string

const (
	TableRestaurants   EntityTable = "restaurants"
	TableMenuItems     EntityTable = "menu_items"
	TableRatings       EntityTable = "ratings"
	TableDeviceRatings EntityTable = "device_ratings"
)

// Valid reports whether t is one of the known mirrored tables.
func (t EntityTable) Valid() bool {
	switch t {
	case TableRestaurants, TableMenuItems, TableRatings, TableDeviceRatings:
		return true
	}
	return false
}

// OpKind is the kind of remote write a pending operation represents.
type OpKind string

const (
	OpInsert OpKind = "insert"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// PendingOperation is one durable queue entry: a remote write that was
// accepted locally while offline and still has to be replayed against the
// remote store. Entries are drained oldest-first and are immutable except for
// RetryCount and Revision.
type PendingOperation struct {
	ID         string          `json:"id"`
	Table      EntityTable     `json:"table"`
	Op         OpKind          `json:"op"`
	EntityID   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	RetryCount int             `json:"retry_count"`

	// Revision increments every time a newer write folds into this entry.
	// Removal after a drain is conditional on the revision still matching,
	// so a fold that lands mid-drain survives for the next pass.
	Revision int `json:"revision"`
}

// Restaurant decodes the payload as a Restaurant snapshot.
func (p PendingOperation) Restaurant() (Restaurant, error) {
	var r Restaurant
	if err := json.Unmarshal(p.Payload, &r); err != nil {
		return Restaurant{}, fmt.Errorf("decode restaurant payload for op %s: %w", p.ID, err)
	}
	return r, nil
}

// MenuItem decodes the payload as a MenuItem snapshot.
func (p PendingOperation) MenuItem() (MenuItem, error) {
	var m MenuItem
	if err := json.Unmarshal(p.Payload, &m); err != nil {
		return MenuItem{}, fmt.Errorf("decode menu item payload for op %s: %w", p.ID, err)
	}
	return m, nil
}

// Rating decodes the payload as a Rating snapshot.
func (p PendingOperation) Rating() (Rating, error) {
	var r Rating
	if err := json.Unmarshal(p.Payload, &r); err != nil {
		return Rating{}, fmt.Errorf("decode rating payload for op %s: %w", p.ID, err)
	}
	return r, nil
}

// DeviceRating decodes the payload as a DeviceRating snapshot.
func (p PendingOperation) DeviceRating() (DeviceRating, error) {
	var d DeviceRating
	if err := json.Unmarshal(p.Payload, &d); err != nil {
		return DeviceRating{}, fmt.Errorf("decode device rating payload for op %s: %w", p.ID, err)
	}
	return d, nil
}
