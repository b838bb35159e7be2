package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/models"
)

var deviceRatingColumns = []string{
	"id", "restaurant_id", "device_id", "stars", "created_at", "sync_status",
}

type deviceRatingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDeviceRatingRepository constructs the sqlite-backed [DeviceRatingRepository].
func NewDeviceRatingRepository(db *DB) DeviceRatingRepository {
	return &deviceRatingRepository{db: db, logger: db.logger}
}

// Upsert implements [DeviceRatingRepository].
func (r *deviceRatingRepository) Upsert(ctx context.Context, d *models.DeviceRating) error {
	return upsertDeviceRatingTx(ctx, r.db, d)
}

func upsertDeviceRatingTx(ctx context.Context, tx queryer, d *models.DeviceRating) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	query, args, err := qb.Insert("device_ratings").
		Columns(deviceRatingColumns...).
		Values(d.ID, d.RestaurantID, d.DeviceID, d.Stars, d.CreatedAt, d.SyncStatus).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			restaurant_id = excluded.restaurant_id, device_id = excluded.device_id,
			stars = excluded.stars, sync_status = excluded.sync_status`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build device rating upsert query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert device rating %s: %w", d.ID, err)
	}
	return nil
}

// ListByRestaurant implements [DeviceRatingRepository].
func (r *deviceRatingRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.DeviceRating, error) {
	query, args, err := qb.Select(deviceRatingColumns...).
		From("device_ratings").
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build device rating list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list device ratings: %w", err)
	}
	defer rows.Close()

	var out []models.DeviceRating
	for rows.Next() {
		var d models.DeviceRating
		if err = rows.Scan(&d.ID, &d.RestaurantID, &d.DeviceID, &d.Stars, &d.CreatedAt, &d.SyncStatus); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// SetSyncStatus implements [DeviceRatingRepository].
func (r *deviceRatingRepository) SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error {
	return setSyncStatusTx(ctx, r.db, "device_ratings", id, status)
}

// UpsertWithPending implements [DeviceRatingRepository].
func (r *deviceRatingRepository) UpsertWithPending(ctx context.Context, d *models.DeviceRating, op models.OpKind) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin device rating pending tx: %w", err)
	}
	defer tx.Rollback()

	d.SyncStatus = models.StatusPending
	if err = upsertDeviceRatingTx(ctx, tx, d); err != nil {
		return err
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal device rating payload: %w", err)
	}
	if err = enqueueTx(ctx, tx, &models.PendingOperation{
		Table:    models.TableDeviceRatings,
		Op:       op,
		EntityID: d.ID,
		Payload:  payload,
	}); err != nil {
		return err
	}

	return tx.Commit()
}
