// Package adapter provides the outbound side of the sync core: thin
// per-entity gateways performing CRUD against the remote system of record,
// and the role/identity lookup used by the offline-mode policy.
//
// Two [RemoteGateway] implementations ship: a REST one (PostgREST-style HTTP
// API, resty) and a direct Postgres one (pgx). Both map backend errors to the
// sentinel values in errors.go so callers can use [errors.Is] regardless of
// transport: [ErrAlreadyExists] for uniqueness violations, [ErrNotFound] for
// missing rows, [ErrUnavailable] for transient failures worth retrying.
package adapter

import (
	"context"

	"github.com/dinespot/dinesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteGateway is the consumed interface of the remote relational store.
// Implementations never interpret sync metadata: the local sync_status tag is
// owned by the local store and is not part of the remote contract.
type RemoteGateway interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	InsertRestaurant(ctx context.Context, r models.Restaurant) error
	UpdateRestaurant(ctx context.Context, r models.Restaurant) error
	DeleteRestaurant(ctx context.Context, id string) error
	// UpdateRestaurantRating persists the derived weighted aggregate back to
	// the parent restaurant row.
	UpdateRestaurantRating(ctx context.Context, id string, rating float64, count int) error

	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	InsertMenuItem(ctx context.Context, m models.MenuItem) error
	UpdateMenuItem(ctx context.Context, m models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error

	ListRatings(ctx context.Context) ([]models.Rating, error)
	ListRestaurantRatings(ctx context.Context, restaurantID string) ([]models.Rating, error)
	// InsertRating returns [ErrAlreadyExists] when the remote unique
	// (restaurant_id, user_id) constraint rejects the row.
	InsertRating(ctx context.Context, r models.Rating) error
	UpdateRating(ctx context.Context, r models.Rating) error
	DeleteRating(ctx context.Context, id string) error

	ListDeviceRatings(ctx context.Context, restaurantID string) ([]models.DeviceRating, error)
	InsertDeviceRating(ctx context.Context, d models.DeviceRating) error
}

// RoleProvider resolves the current caller's role. Lookup failures are
// expected (the auth service may be unreachable); the offline-mode policy
// fails open to online routing in that case.
type RoleProvider interface {
	CurrentRole(ctx context.Context) (string, error)
}

// TokenSource supplies the access token attached to outbound requests and
// inspected for the role claim.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
