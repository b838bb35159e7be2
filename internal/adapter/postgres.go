package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinespot/dinesync/models"
)

// postgresGateway implements [RemoteGateway] directly against the remote
// Postgres tables. It exists for deployments that bypass the REST layer and
// for integration tests against a throwaway database.
type postgresGateway struct {
	pool *pgxpool.Pool
}

// NewPostgresGateway connects the pool and returns the pgx-backed gateway.
func NewPostgresGateway(ctx context.Context, dsn string) (RemoteGateway, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect remote postgres: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping remote postgres: %w", err)
	}
	return &postgresGateway{pool: pool}, nil
}

// mapPgError converts pgx driver errors to the package sentinels:
// unique_violation → ErrAlreadyExists, no rows → ErrNotFound, and the
// connection/"try again" classes → ErrUnavailable.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", ErrAlreadyExists, pgErr.Detail)
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.SerializationFailure,
			pgerrcode.DeadlockDetected,
			pgerrcode.CannotConnectNow:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}

	// Anything below the protocol level (dial failure, reset) is transient.
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// ListRestaurants implements [RemoteGateway].
func (g *postgresGateway) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := g.pool.Query(ctx, `
		SELECT id, name, description, category, price_tier,
		       latitude, longitude, image_url, phone, website,
		       rating, rating_count, owner_id, created_at, updated_at
		FROM restaurants`)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err = rows.Scan(&r.ID, &r.Name, &r.Description, &r.Category, &r.PriceTier,
			&r.Latitude, &r.Longitude, &r.ImageURL, &r.Phone, &r.Website,
			&r.Rating, &r.RatingCount, &r.OwnerID, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertRestaurant implements [RemoteGateway].
func (g *postgresGateway) InsertRestaurant(ctx context.Context, r models.Restaurant) error {
	_, err := g.pool.Exec(ctx, `
		INSERT INTO restaurants (id, name, description, category, price_tier,
			latitude, longitude, image_url, phone, website,
			rating, rating_count, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		r.ID, r.Name, r.Description, r.Category, r.PriceTier,
		r.Latitude, r.Longitude, r.ImageURL, r.Phone, r.Website,
		r.Rating, r.RatingCount, r.OwnerID, r.CreatedAt, r.UpdatedAt)
	return mapPgError(err)
}

// UpdateRestaurant implements [RemoteGateway].
func (g *postgresGateway) UpdateRestaurant(ctx context.Context, r models.Restaurant) error {
	tag, err := g.pool.Exec(ctx, `
		UPDATE restaurants SET name = $2, description = $3, category = $4,
			price_tier = $5, latitude = $6, longitude = $7, image_url = $8,
			phone = $9, website = $10, rating = $11, rating_count = $12,
			owner_id = $13, updated_at = $14
		WHERE id = $1`,
		r.ID, r.Name, r.Description, r.Category, r.PriceTier,
		r.Latitude, r.Longitude, r.ImageURL, r.Phone, r.Website,
		r.Rating, r.RatingCount, r.OwnerID, r.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRestaurant implements [RemoteGateway].
func (g *postgresGateway) DeleteRestaurant(ctx context.Context, id string) error {
	_, err := g.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	return mapPgError(err)
}

// UpdateRestaurantRating implements [RemoteGateway].
func (g *postgresGateway) UpdateRestaurantRating(ctx context.Context, id string, rating float64, count int) error {
	tag, err := g.pool.Exec(ctx,
		`UPDATE restaurants SET rating = $2, rating_count = $3 WHERE id = $1`,
		id, rating, count)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListMenuItems implements [RemoteGateway].
func (g *postgresGateway) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := g.pool.Query(ctx, `
		SELECT id, restaurant_id, name, description, price,
		       category, image_url, available, created_at, updated_at
		FROM menu_items`)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err = rows.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price,
			&m.Category, &m.ImageURL, &m.Available, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertMenuItem implements [RemoteGateway].
func (g *postgresGateway) InsertMenuItem(ctx context.Context, m models.MenuItem) error {
	_, err := g.pool.Exec(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, description, price,
			category, image_url, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.RestaurantID, m.Name, m.Description, m.Price,
		m.Category, m.ImageURL, m.Available, m.CreatedAt, m.UpdatedAt)
	return mapPgError(err)
}

// UpdateMenuItem implements [RemoteGateway].
func (g *postgresGateway) UpdateMenuItem(ctx context.Context, m models.MenuItem) error {
	tag, err := g.pool.Exec(ctx, `
		UPDATE menu_items SET restaurant_id = $2, name = $3, description = $4,
			price = $5, category = $6, image_url = $7, available = $8,
			updated_at = $9
		WHERE id = $1`,
		m.ID, m.RestaurantID, m.Name, m.Description, m.Price,
		m.Category, m.ImageURL, m.Available, m.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMenuItem implements [RemoteGateway].
func (g *postgresGateway) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := g.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return mapPgError(err)
}

// ListRatings implements [RemoteGateway].
func (g *postgresGateway) ListRatings(ctx context.Context) ([]models.Rating, error) {
	return g.queryRatings(ctx, `
		SELECT id, restaurant_id, user_id, stars, comment, created_at, updated_at
		FROM ratings`)
}

// ListRestaurantRatings implements [RemoteGateway].
func (g *postgresGateway) ListRestaurantRatings(ctx context.Context, restaurantID string) ([]models.Rating, error) {
	return g.queryRatings(ctx, `
		SELECT id, restaurant_id, user_id, stars, comment, created_at, updated_at
		FROM ratings WHERE restaurant_id = $1`, restaurantID)
}

func (g *postgresGateway) queryRatings(ctx context.Context, query string, args ...any) ([]models.Rating, error) {
	rows, err := g.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []models.Rating
	for rows.Next() {
		var r models.Rating
		if err = rows.Scan(&r.ID, &r.RestaurantID, &r.UserID, &r.Stars, &r.Comment,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertRating implements [RemoteGateway].
func (g *postgresGateway) InsertRating(ctx context.Context, r models.Rating) error {
	_, err := g.pool.Exec(ctx, `
		INSERT INTO ratings (id, restaurant_id, user_id, stars, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.RestaurantID, r.UserID, r.Stars, r.Comment, r.CreatedAt, r.UpdatedAt)
	return mapPgError(err)
}

// UpdateRating implements [RemoteGateway].
func (g *postgresGateway) UpdateRating(ctx context.Context, r models.Rating) error {
	tag, err := g.pool.Exec(ctx, `
		UPDATE ratings SET stars = $2, comment = $3, updated_at = $4 WHERE id = $1`,
		r.ID, r.Stars, r.Comment, r.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRating implements [RemoteGateway].
func (g *postgresGateway) DeleteRating(ctx context.Context, id string) error {
	_, err := g.pool.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	return mapPgError(err)
}

// ListDeviceRatings implements [RemoteGateway].
func (g *postgresGateway) ListDeviceRatings(ctx context.Context, restaurantID string) ([]models.DeviceRating, error) {
	rows, err := g.pool.Query(ctx, `
		SELECT id, restaurant_id, device_id, stars, created_at
		FROM device_ratings WHERE restaurant_id = $1`, restaurantID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []models.DeviceRating
	for rows.Next() {
		var d models.DeviceRating
		if err = rows.Scan(&d.ID, &d.RestaurantID, &d.DeviceID, &d.Stars, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// InsertDeviceRating implements [RemoteGateway].
func (g *postgresGateway) InsertDeviceRating(ctx context.Context, d models.DeviceRating) error {
	_, err := g.pool.Exec(ctx, `
		INSERT INTO device_ratings (id, restaurant_id, device_id, stars, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		d.ID, d.RestaurantID, d.DeviceID, d.Stars, d.CreatedAt)
	return mapPgError(err)
}
