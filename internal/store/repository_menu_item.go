package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/models"
)

var menuItemColumns = []string{
	"id", "restaurant_id", "name", "description", "price",
	"category", "image_url", "available", "created_at", "updated_at", "sync_status",
}

type menuItemRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMenuItemRepository constructs the sqlite-backed [MenuItemRepository].
func NewMenuItemRepository(db *DB) MenuItemRepository {
	return &menuItemRepository{db: db, logger: db.logger}
}

// Upsert implements [MenuItemRepository].
func (r *menuItemRepository) Upsert(ctx context.Context, item *models.MenuItem) error {
	return upsertMenuItemTx(ctx, r.db, item)
}

func upsertMenuItemTx(ctx context.Context, tx queryer, item *models.MenuItem) error {
	stampTimestamps(&item.CreatedAt, &item.UpdatedAt)

	query, args, err := qb.Insert("menu_items").
		Columns(menuItemColumns...).
		Values(item.ID, item.RestaurantID, item.Name, item.Description, item.Price,
			item.Category, item.ImageURL, item.Available, item.CreatedAt, item.UpdatedAt, item.SyncStatus).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			restaurant_id = excluded.restaurant_id, name = excluded.name,
			description = excluded.description, price = excluded.price,
			category = excluded.category, image_url = excluded.image_url,
			available = excluded.available, updated_at = excluded.updated_at,
			sync_status = excluded.sync_status`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build menu item upsert query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert menu item %s: %w", item.ID, err)
	}
	return nil
}

// GetByID implements [MenuItemRepository].
func (r *menuItemRepository) GetByID(ctx context.Context, id string) (models.MenuItem, error) {
	query, args, err := qb.Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("build menu item get query: %w", err)
	}

	item, err := scanMenuItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MenuItem{}, ErrNotFound
	}
	return item, err
}

// ListByRestaurant implements [MenuItemRepository]. The query rides the
// restaurant_id index, never a full-table scan.
func (r *menuItemRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	query, args, err := qb.Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build menu item list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var out []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Delete implements [MenuItemRepository].
func (r *menuItemRepository) Delete(ctx context.Context, id string) error {
	return deleteRowTx(ctx, r.db, "menu_items", id)
}

// SetSyncStatus implements [MenuItemRepository].
func (r *menuItemRepository) SetSyncStatus(ctx context.Context, id string, status models.SyncStatus) error {
	return setSyncStatusTx(ctx, r.db, "menu_items", id, status)
}

// UpsertWithPending implements [MenuItemRepository].
func (r *menuItemRepository) UpsertWithPending(ctx context.Context, item *models.MenuItem, op models.OpKind) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin menu item pending tx: %w", err)
	}
	defer tx.Rollback()

	item.SyncStatus = models.StatusPending
	if err = upsertMenuItemTx(ctx, tx, item); err != nil {
		return err
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal menu item payload: %w", err)
	}
	if err = enqueueTx(ctx, tx, &models.PendingOperation{
		Table:    models.TableMenuItems,
		Op:       op,
		EntityID: item.ID,
		Payload:  payload,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteWithPending implements [MenuItemRepository].
func (r *menuItemRepository) DeleteWithPending(ctx context.Context, id string) error {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin menu item delete tx: %w", err)
	}
	defer tx.Rollback()

	if err = deleteRowTx(ctx, tx, "menu_items", id); err != nil {
		return err
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal menu item payload: %w", err)
	}
	if err = enqueueTx(ctx, tx, &models.PendingOperation{
		Table:    models.TableMenuItems,
		Op:       models.OpDelete,
		EntityID: id,
		Payload:  payload,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var item models.MenuItem
	err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.ImageURL, &item.Available, &item.CreatedAt, &item.UpdatedAt, &item.SyncStatus)
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}
