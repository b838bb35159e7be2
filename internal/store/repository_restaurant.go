package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/models"
)

var restaurantColumns = []string{
	"id", "name", "description", "category", "price_tier",
	"latitude", "longitude", "image_url", "phone", "website",
	"rating", "rating_count", "owner_id", "created_at", "updated_at", "sync_status",
}

type restaurantRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRestaurantRepository constructs the sqlite-backed [RestaurantRepository].
func NewRestaurantRepository(db *DB) RestaurantRepository {
	return &restaurantRepository{db: db, logger: db.logger}
}

// Upsert implements [RestaurantRepository].
func (r *restaurantRepository) Upsert(ctx context.Context, rest *models.Restaurant) error {
	return upsertRestaurantTx(ctx, r.db, rest)
}

func upsertRestaurantTx(ctx context.Context, tx queryer, rest *models.Restaurant) error {
	stampTimestamps(&rest.CreatedAt, &rest.UpdatedAt)

	query, args, err := qb.Insert("restaurants").
		Columns(restaurantColumns...).
		Values(rest.ID, rest.Name, rest.Description, rest.Category, rest.PriceTier,
			rest.Latitude, rest.Longitude, rest.ImageURL, rest.Phone, rest.Website,
			rest.Rating, rest.RatingCount, rest.OwnerID, rest.CreatedAt, rest.UpdatedAt, rest.SyncStatus).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, description = excluded.description,
			category = excluded.category, price_tier = excluded.price_tier,
			latitude = excluded.latitude, longitude = excluded.longitude,
			image_url = excluded.image_url, phone = excluded.phone,
			website = excluded.website, rating = excluded.rating,
			rating_count = excluded.rating_count, owner_id = excluded.owner_id,
			updated_at = excluded.updated_at, sync_status = excluded.sync_status`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build restaurant upsert query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert restaurant %s: %w", rest.ID, err)
	}
	return nil
}

// GetByID implements [RestaurantRepository].
func (r *restaurantRepository) GetByID(ctx context.Context, id string) (models.Restaurant, error) {
	query, args, err := qb.Select(restaurantColumns...).
		From("restaurants").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("build restaurant get query: %w", err)
	}

	rest, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrNotFound
	}
	return rest, err
}

// List implements [RestaurantRepository].
func (r *restaurantRepository) List(ctx context.Context) ([]models.Restaurant, error) {
	query, args, err := qb.Select(restaurantColumns...).
		From("restaurants").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build restaurant list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var out []models.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

// Delete implements [RestaurantRepository].
func (r *restaurantRepository) Delete(ctx context.Context, id string) error {
	return deleteRowTx(ctx, r.db, "restaurants", id)
}

// SetSyncStatus implements [RestaurantRepository].
func (r *restaurantRepository) SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error {
	return setSyncStatusTx(ctx, r.db, "restaurants", id, status)
}

// UpsertWithPending implements [RestaurantRepository]. The entity upsert and
// the queue append commit or roll back together, so a crash can never leave
// a pending row without its queue entry.
func (r *restaurantRepository) UpsertWithPending(ctx context.Context, rest *models.Restaurant, op models.OpKind) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restaurant pending tx: %w", err)
	}
	defer tx.Rollback()

	rest.SyncStatus = models.StatusPending
	if err = upsertRestaurantTx(ctx, tx, rest); err != nil {
		return err
	}

	payload, err := json.Marshal(rest)
	if err != nil {
		return fmt.Errorf("marshal restaurant payload: %w", err)
	}
	if err = enqueueTx(ctx, tx, &models.PendingOperation{
		Table:    models.TableRestaurants,
		Op:       op,
		EntityID: rest.ID,
		Payload:  payload,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteWithPending implements [RestaurantRepository].
func (r *restaurantRepository) DeleteWithPending(ctx context.Context, id string) error {
	rest, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restaurant delete tx: %w", err)
	}
	defer tx.Rollback()

	if err = deleteRowTx(ctx, tx, "restaurants", id); err != nil {
		return err
	}

	payload, err := json.Marshal(rest)
	if err != nil {
		return fmt.Errorf("marshal restaurant payload: %w", err)
	}
	if err = enqueueTx(ctx, tx, &models.PendingOperation{
		Table:    models.TableRestaurants,
		Op:       models.OpDelete,
		EntityID: id,
		Payload:  payload,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (models.Restaurant, error) {
	var rest models.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Category, &rest.PriceTier,
		&rest.Latitude, &rest.Longitude, &rest.ImageURL, &rest.Phone, &rest.Website,
		&rest.Rating, &rest.RatingCount, &rest.OwnerID, &rest.CreatedAt, &rest.UpdatedAt, &rest.SyncStatus)
	if err != nil {
		return models.Restaurant{}, err
	}
	return rest, nil
}

// stampTimestamps fills zero created/updated timestamps with the current time.
func stampTimestamps(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

func deleteRowTx(ctx context.Context, tx queryer, table, id string) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete query: %w", table, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

func setSyncStatusTx(ctx context.Context, tx queryer, table, id string, status models.SyncStatus) error {
	query, args, err := qb.Update(table).
		Set("sync_status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s status query: %w", table, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set sync status on %s: %w", table, err)
	}
	return nil
}
