// Package store is the local persistence layer: a sqlite mirror of the
// remote tables plus the durable pending-operation queue. Every mirrored row
// carries a sync_status tag; rows with unsynced local edits are always
// "pending" or "conflict", never "synced".
package store

import (
	"context"

	"github.com/dinespot/dinesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RestaurantRepository is local CRUD for mirrored restaurants.
type RestaurantRepository interface {
	// Upsert inserts or replaces the row keyed by ID. A zero UpdatedAt is
	// stamped with the current time.
	Upsert(ctx context.Context, r *models.Restaurant) error
	GetByID(ctx context.Context, id string) (models.Restaurant, error)
	List(ctx context.Context) ([]models.Restaurant, error)
	Delete(ctx context.Context, id string) error
	SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error

	// UpsertWithPending applies the upsert (as status pending) and enqueues
	// the pending operation in one transaction.
	UpsertWithPending(ctx context.Context, r *models.Restaurant, op models.OpKind) error
	// DeleteWithPending removes the row and enqueues a delete operation in
	// one transaction.
	DeleteWithPending(ctx context.Context, id string) error
}

// MenuItemRepository is local CRUD for mirrored menu items.
type MenuItemRepository interface {
	Upsert(ctx context.Context, m *models.MenuItem) error
	GetByID(ctx context.Context, id string) (models.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	Delete(ctx context.Context, id string) error
	SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error

	UpsertWithPending(ctx context.Context, m *models.MenuItem, op models.OpKind) error
	DeleteWithPending(ctx context.Context, id string) error
}

// RatingRepository is local CRUD for mirrored registered-user ratings.
type RatingRepository interface {
	Upsert(ctx context.Context, r *models.Rating) error
	GetByID(ctx context.Context, id string) (models.Rating, error)
	// GetByUser returns the single rating for (restaurantID, userID), the
	// pair the remote store keeps unique.
	GetByUser(ctx context.Context, restaurantID, userID string) (models.Rating, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Rating, error)
	Delete(ctx context.Context, id string) error
	SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error

	UpsertWithPending(ctx context.Context, r *models.Rating, op models.OpKind) error
	DeleteWithPending(ctx context.Context, id string) error
}

// DeviceRatingRepository is local CRUD for anonymous device ratings.
type DeviceRatingRepository interface {
	Upsert(ctx context.Context, d *models.DeviceRating) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.DeviceRating, error)
	SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error

	UpsertWithPending(ctx context.Context, d *models.DeviceRating, op models.OpKind) error
}

// PendingQueue is the durable queue of remote writes accepted while offline.
// It is the single shared mutable resource between the domain services
// (writers) and the sync engine (drainer).
type PendingQueue interface {
	// Enqueue appends op, folding it into an existing entry for the same
	// (table, entity) so at most one queued operation represents an entity's
	// unsynced state.
	Enqueue(ctx context.Context, op *models.PendingOperation) error
	// ListPending returns the queue oldest-first.
	ListPending(ctx context.Context) ([]models.PendingOperation, error)
	// RemovePending deletes the entry only while its revision still matches,
	// and reports whether it did. A false return means a newer write folded
	// into the entry after it was listed; the caller must treat the entity
	// as still pending.
	RemovePending(ctx context.Context, id string, revision int) (bool, error)
	IncrementRetry(ctx context.Context, id string) error
	Len(ctx context.Context) (int, error)
}

// Storages aggregates all local repositories handed to the service layer.
type Storages struct {
	Restaurants   RestaurantRepository
	MenuItems     MenuItemRepository
	Ratings       RatingRepository
	DeviceRatings DeviceRatingRepository
	Queue         PendingQueue
}

// NewStorages wires all sqlite-backed repositories over one connection.
func NewStorages(db *DB) *Storages {
	return &Storages{
		Restaurants:   NewRestaurantRepository(db),
		MenuItems:     NewMenuItemRepository(db),
		Ratings:       NewRatingRepository(db),
		DeviceRatings: NewDeviceRatingRepository(db),
		Queue:         NewPendingQueue(db),
	}
}
