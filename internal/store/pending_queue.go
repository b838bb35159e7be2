package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/models"
)

// qb is the shared squirrel builder for the sqlite placeholder style.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// queryer is satisfied by both *sql.DB and *sql.Tx, so repository helpers can
// run standalone or inside a surrounding transaction.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type pendingQueue struct {
	db     *DB
	logger *logger.Logger
}

// NewPendingQueue constructs the sqlite-backed [PendingQueue].
func NewPendingQueue(db *DB) PendingQueue {
	return &pendingQueue{db: db, logger: db.logger}
}

// Enqueue implements [PendingQueue].
func (q *pendingQueue) Enqueue(ctx context.Context, op *models.PendingOperation) error {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin enqueue tx: %w", err)
	}
	defer tx.Rollback()

	if err = enqueueTx(ctx, tx, op); err != nil {
		return err
	}

	return tx.Commit()
}

// enqueueTx appends op within an existing transaction, folding it into the
// queued entry for the same (table, entity) when one exists. Folding keeps
// the original enqueued_at slot so FIFO ordering across distinct entities is
// preserved.
//
// Folding rules:
//   - queued insert + new delete  → the entry is removed (the remote store
//     never saw the row, so there is nothing to replay);
//   - queued insert + new update  → stays an insert with the new payload;
//   - queued delete + new write   → becomes an update (the remote row still
//     exists until the delete is drained);
//   - anything else               → the new op kind and payload win.
func enqueueTx(ctx context.Context, tx queryer, op *models.PendingOperation) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	if op.EnqueuedAt.IsZero() {
		op.EnqueuedAt = time.Now().UTC()
	}
	if !op.Table.Valid() {
		return fmt.Errorf("enqueue: unknown entity table %q", op.Table)
	}

	var existingID string
	var existingOp models.OpKind
	query, args, err := qb.Select("id", "operation").
		From("pending_operations").
		Where(sq.Eq{"entity_table": op.Table, "entity_id": op.EntityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build pending lookup query: %w", err)
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(&existingID, &existingOp)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return insertPendingTx(ctx, tx, op)
	case err != nil:
		return fmt.Errorf("lookup pending entry: %w", err)
	}

	if existingOp == models.OpInsert && op.Op == models.OpDelete {
		return removePendingTx(ctx, tx, existingID)
	}

	folded := op.Op
	switch {
	case existingOp == models.OpInsert:
		folded = models.OpInsert
	case existingOp == models.OpDelete && op.Op != models.OpDelete:
		folded = models.OpUpdate
	}

	query, args, err = qb.Update("pending_operations").
		Set("operation", folded).
		Set("payload", string(op.Payload)).
		Set("retry_count", 0).
		Set("revision", sq.Expr("revision + 1")).
		Where(sq.Eq{"id": existingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build pending fold query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("fold pending entry: %w", err)
	}

	op.ID = existingID
	op.Op = folded
	return nil
}

func insertPendingTx(ctx context.Context, tx queryer, op *models.PendingOperation) error {
	query, args, err := qb.Insert("pending_operations").
		Columns("id", "entity_table", "operation", "entity_id", "payload", "enqueued_at", "retry_count", "revision").
		Values(op.ID, op.Table, op.Op, op.EntityID, string(op.Payload), op.EnqueuedAt, op.RetryCount, op.Revision).
		ToSql()
	if err != nil {
		return fmt.Errorf("build pending insert query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert pending entry: %w", err)
	}
	return nil
}

func removePendingTx(ctx context.Context, tx queryer, id string) error {
	query, args, err := qb.Delete("pending_operations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build pending delete query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove pending entry: %w", err)
	}
	return nil
}

// ListPending implements [PendingQueue]. Entries come back oldest-first.
func (q *pendingQueue) ListPending(ctx context.Context) ([]models.PendingOperation, error) {
	query, args, err := qb.Select("id", "entity_table", "operation", "entity_id", "payload", "enqueued_at", "retry_count", "revision").
		From("pending_operations").
		OrderBy("enqueued_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending list query: %w", err)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending entries: %w", err)
	}
	defer rows.Close()

	var ops []models.PendingOperation
	for rows.Next() {
		var op models.PendingOperation
		var payload string
		if err = rows.Scan(&op.ID, &op.Table, &op.Op, &op.EntityID, &payload, &op.EnqueuedAt, &op.RetryCount, &op.Revision); err != nil {
			return nil, fmt.Errorf("scan pending entry: %w", err)
		}
		op.Payload = []byte(payload)
		ops = append(ops, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending entries: %w", err)
	}

	return ops, nil
}

// RemovePending implements [PendingQueue]. The delete matches on revision as
// well as id, so an entry folded after listing is left in place and the
// caller learns the drain result is stale.
func (q *pendingQueue) RemovePending(ctx context.Context, id string, revision int) (bool, error) {
	query, args, err := qb.Delete("pending_operations").
		Where(sq.Eq{"id": id, "revision": revision}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build pending delete query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("remove pending entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read pending delete result: %w", err)
	}
	return affected > 0, nil
}

// IncrementRetry implements [PendingQueue].
func (q *pendingQueue) IncrementRetry(ctx context.Context, id string) error {
	query, args, err := qb.Update("pending_operations").
		Set("retry_count", sq.Expr("retry_count + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build retry increment query: %w", err)
	}
	if _, err = q.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("increment retry count: %w", err)
	}
	return nil
}

// Len implements [PendingQueue].
func (q *pendingQueue) Len(ctx context.Context) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pending_operations").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending entries: %w", err)
	}
	return n, nil
}
