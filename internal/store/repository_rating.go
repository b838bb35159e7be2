package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/models"
)

var ratingColumns = []string{
	"id", "restaurant_id", "user_id", "stars", "comment",
	"created_at", "updated_at", "sync_status",
}

type ratingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRatingRepository constructs the sqlite-backed [RatingRepository].
func NewRatingRepository(db *DB) RatingRepository {
	return &ratingRepository{db: db, logger: db.logger}
}

// Upsert implements [RatingRepository]. An insert colliding with the local
// (restaurant_id, user_id) unique constraint surfaces as [ErrAlreadyExists].
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	return upsertRatingTx(ctx, r.db, rating)
}

func upsertRatingTx(ctx context.Context, tx queryer, rating *models.Rating) error {
	stampTimestamps(&rating.CreatedAt, &rating.UpdatedAt)

	query, args, err := qb.Insert("ratings").
		Columns(ratingColumns...).
		Values(rating.ID, rating.RestaurantID, rating.UserID, rating.Stars, rating.Comment,
			rating.CreatedAt, rating.UpdatedAt, rating.SyncStatus).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			restaurant_id = excluded.restaurant_id, user_id = excluded.user_id,
			stars = excluded.stars, comment = excluded.comment,
			updated_at = excluded.updated_at, sync_status = excluded.sync_status`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build rating upsert query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("upsert rating %s: %w", rating.ID, err)
	}
	return nil
}

// GetByID implements [RatingRepository].
func (r *ratingRepository) GetByID(ctx context.Context, id string) (models.Rating, error) {
	query, args, err := qb.Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Rating{}, fmt.Errorf("build rating get query: %w", err)
	}

	rating, err := scanRating(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rating{}, ErrNotFound
	}
	return rating, err
}

// GetByUser implements [RatingRepository].
func (r *ratingRepository) GetByUser(ctx context.Context, restaurantID, userID string) (models.Rating, error) {
	query, args, err := qb.Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"restaurant_id": restaurantID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Rating{}, fmt.Errorf("build rating user query: %w", err)
	}

	rating, err := scanRating(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rating{}, ErrNotFound
	}
	return rating, err
}

// ListByRestaurant implements [RatingRepository].
func (r *ratingRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Rating, error) {
	query, args, err := qb.Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rating list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var out []models.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rating)
	}
	return out, rows.Err()
}

// Delete implements [RatingRepository].
func (r *ratingRepository) Delete(ctx context.Context, id string) error {
	return deleteRowTx(ctx, r.db, "ratings", id)
}

// SetSyncStatus implements [RatingRepository].
func (r *ratingRepository) SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error {
	return setSyncStatusTx(ctx, r.db, "ratings", id, status)
}

// UpsertWithPending implements [RatingRepository].
func (r *ratingRepository) UpsertWithPending(ctx context.Context, rating *models.Rating, op models.OpKind) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rating pending tx: %w", err)
	}
	defer tx.Rollback()

	rating.SyncStatus = models.StatusPending
	if err = upsertRatingTx(ctx, tx, rating); err != nil {
		return err
	}

	payload, err := json.Marshal(rating)
	if err != nil {
		return fmt.Errorf("marshal rating payload: %w", err)
	}
	if err = enqueueTx(ctx, tx, &models.PendingOperation{
		Table:    models.TableRatings,
		Op:       op,
		EntityID: rating.ID,
		Payload:  payload,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteWithPending implements [RatingRepository].
func (r *ratingRepository) DeleteWithPending(ctx context.Context, id string) error {
	rating, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rating delete tx: %w", err)
	}
	defer tx.Rollback()

	if err = deleteRowTx(ctx, tx, "ratings", id); err != nil {
		return err
	}

	payload, err := json.Marshal(rating)
	if err != nil {
		return fmt.Errorf("marshal rating payload: %w", err)
	}
	if err = enqueueTx(ctx, tx, &models.PendingOperation{
		Table:    models.TableRatings,
		Op:       models.OpDelete,
		EntityID: id,
		Payload:  payload,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func scanRating(row rowScanner) (models.Rating, error) {
	var rating models.Rating
	err := row.Scan(&rating.ID, &rating.RestaurantID, &rating.UserID, &rating.Stars, &rating.Comment,
		&rating.CreatedAt, &rating.UpdatedAt, &rating.SyncStatus)
	if err != nil {
		return models.Rating{}, err
	}
	return rating, nil
}

// isUniqueViolation classifies the driver error for a unique-constraint hit,
// here the (restaurant_id, user_id) one-rating-per-user index.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
