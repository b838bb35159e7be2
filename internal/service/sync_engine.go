package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/internal/netmon"
	"github.com/dinespot/dinesync/internal/store"
	"github.com/dinespot/dinesync/models"
)

// EngineConfig carries the sync tunables. Zero values fall back to the
// observed defaults: three drain attempts and a five second tolerance.
type EngineConfig struct {
	MaxRetries        int
	ConflictTolerance time.Duration
}

// SyncEngine reconciles the local store with the remote system of record:
// push phase drains the pending-operation queue, pull phase refreshes the
// local mirror, and divergent rows go through conflict resolution.
//
// At most one sync pass runs at a time; a Sync call arriving mid-pass is
// rejected immediately with a failed SyncResult.
type SyncEngine struct {
	logger   *logger.Logger
	storages *store.Storages
	gateway  adapter.RemoteGateway
	monitor  *netmon.Monitor

	maxRetries int
	tolerance  time.Duration
	policies   map[models.EntityTable]ConflictPolicy

	mu         sync.Mutex
	isSyncing  bool
	conflicts  map[string]*models.Conflict
	listeners  map[int]func(models.SyncResult)
	nextSub    int
	lastResult *models.SyncResult
}

// NewSyncEngine wires the engine. Per-entity conflict policies default to
// last-write-wins for restaurants and menu items and manual resolution for
// ratings.
func NewSyncEngine(storages *store.Storages, gateway adapter.RemoteGateway, monitor *netmon.Monitor, cfg EngineConfig, log *logger.Logger) *SyncEngine {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.ConflictTolerance <= 0 {
		cfg.ConflictTolerance = 5 * time.Second
	}

	return &SyncEngine{
		logger:     log,
		storages:   storages,
		gateway:    gateway,
		monitor:    monitor,
		maxRetries: cfg.MaxRetries,
		tolerance:  cfg.ConflictTolerance,
		policies: map[models.EntityTable]ConflictPolicy{
			models.TableRestaurants: PolicyLastWriteWins,
			models.TableMenuItems:   PolicyLastWriteWins,
			models.TableRatings:     PolicyManual,
		},
		conflicts: make(map[string]*models.Conflict),
		listeners: make(map[int]func(models.SyncResult)),
	}
}

// AddSyncListener registers cb for the result of every completed sync pass.
// The returned function unregisters it.
func (e *SyncEngine) AddSyncListener(cb func(models.SyncResult)) func() {
	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.listeners[id] = cb
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.listeners, id)
		e.mu.Unlock()
	}
}

// LastResult returns the outcome of the most recent completed sync pass, or
// false when none has run yet.
func (e *SyncEngine) LastResult() (models.SyncResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastResult == nil {
		return models.SyncResult{}, false
	}
	return *e.lastResult, true
}

// Sync runs one reconciliation pass. Guard rejections (a pass already
// running, device offline) come back as a failed SyncResult, never as a
// panic or an error value.
func (e *SyncEngine) Sync(ctx context.Context, opts models.SyncOptions) models.SyncResult {
	res := models.SyncResult{StartedAt: time.Now().UTC()}

	if !e.beginSync() {
		res.Success = false
		res.Errors = append(res.Errors, ErrSyncInProgress.Error())
		res.FinishedAt = time.Now().UTC()
		return res
	}
	defer e.endSync()

	if e.monitor.Status() != netmon.StatusOnline {
		res.Success = false
		res.Errors = append(res.Errors, ErrOffline.Error())
		res.FinishedAt = time.Now().UTC()

		// Offline rejections are a real pass outcome: record and broadcast
		// them like any other. The in-progress guard stays silent because the
		// live pass broadcasts its own result.
		e.mu.Lock()
		e.lastResult = &res
		e.mu.Unlock()
		e.broadcast(res)
		return res
	}

	maxRetries := e.maxRetries
	if opts.MaxRetries > 0 {
		maxRetries = opts.MaxRetries
	}

	e.pushPending(ctx, maxRetries, &res)

	if opts.PullEnabled(opts.SyncRestaurants) {
		e.pullRestaurants(ctx, &res)
	}
	if opts.PullEnabled(opts.SyncMenuItems) {
		e.pullMenuItems(ctx, &res)
	}
	if opts.PullEnabled(opts.SyncRatings) {
		e.pullRatings(ctx, &res)
	}

	res.Success = res.FailedCount == 0
	res.FinishedAt = time.Now().UTC()

	e.mu.Lock()
	e.lastResult = &res
	e.mu.Unlock()

	e.broadcast(res)
	return res
}

func (e *SyncEngine) beginSync() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.isSyncing {
		return false
	}
	e.isSyncing = true
	return true
}

func (e *SyncEngine) endSync() {
	e.mu.Lock()
	e.isSyncing = false
	e.mu.Unlock()
}

func (e *SyncEngine) broadcast(res models.SyncResult) {
	e.mu.Lock()
	ids := make([]int, 0, len(e.listeners))
	for id := range e.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	cbs := make([]func(models.SyncResult), 0, len(ids))
	for _, id := range ids {
		cbs = append(cbs, e.listeners[id])
	}
	e.mu.Unlock()

	for _, cb := range cbs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error().Interface("panic", r).Msg("sync listener panicked")
				}
			}()
			cb(res)
		}()
	}
}

// ── Push phase ──────────────────────────────────────────────────────────────

// pushPending drains the queue snapshot taken at drain start; entries
// enqueued while gateway calls are in flight wait for the next pass.
func (e *SyncEngine) pushPending(ctx context.Context, maxRetries int, res *models.SyncResult) {
	ops, err := e.storages.Queue.ListPending(ctx)
	if err != nil {
		res.FailedCount++
		res.Errors = append(res.Errors, fmt.Sprintf("list pending: %v", err))
		return
	}

	for _, op := range ops {
		if op.RetryCount >= maxRetries {
			e.dropOperation(ctx, op, res, fmt.Sprintf("retry ceiling %d reached", maxRetries))
			continue
		}

		err := e.applyOperation(ctx, op)
		switch {
		case err == nil:
			removed, rmErr := e.storages.Queue.RemovePending(ctx, op.ID, op.Revision)
			if rmErr != nil {
				e.logger.Err(rmErr).Str("op", op.ID).Msg("failed to remove drained operation")
				continue
			}
			if !removed {
				// A newer write folded into the entry while the gateway call
				// was in flight. The entity stays pending and the folded
				// payload is replayed on the next pass.
				e.logger.Info().Str("op", op.ID).Str("entity", op.EntityID).Msg("operation folded mid-drain, keeping entity pending")
				continue
			}
			e.markPushed(ctx, op)
			res.SyncedCount++

		case errors.Is(err, adapter.ErrAlreadyExists), errors.Is(err, errCorruptOperation):
			// Terminal: replaying a guaranteed duplicate or an undecodable
			// payload can never succeed.
			e.dropOperation(ctx, op, res, err.Error())

		default:
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("push %s %s/%s: %v", op.Op, op.Table, op.EntityID, err))
			if rtErr := e.storages.Queue.IncrementRetry(ctx, op.ID); rtErr != nil {
				e.logger.Err(rtErr).Str("op", op.ID).Msg("failed to increment retry count")
			}
		}
	}
}

func (e *SyncEngine) dropOperation(ctx context.Context, op models.PendingOperation, res *models.SyncResult, reason string) {
	removed, err := e.storages.Queue.RemovePending(ctx, op.ID, op.Revision)
	if err != nil {
		e.logger.Err(err).Str("op", op.ID).Msg("failed to drop operation")
		res.FailedCount++
		res.Errors = append(res.Errors, fmt.Sprintf("drop %s %s/%s: %v", op.Op, op.Table, op.EntityID, err))
		return
	}
	if !removed {
		// The entry was folded since listing: it now carries a fresh payload
		// with a reset retry count, so the drop no longer applies.
		e.logger.Info().Str("op", op.ID).Str("entity", op.EntityID).Msg("operation folded mid-drain, drop skipped")
		return
	}

	e.logger.Warn().
		Str("op", op.ID).
		Str("table", string(op.Table)).
		Str("entity", op.EntityID).
		Str("reason", reason).
		Msg("dropped pending operation")
	res.FailedCount++
	res.Errors = append(res.Errors, fmt.Sprintf("dropped %s %s/%s: %s", op.Op, op.Table, op.EntityID, reason))
}

// errCorruptOperation marks queue entries that cannot be decoded or target an
// unknown table. They indicate a programming error, not a remote condition.
var errCorruptOperation = errors.New("corrupted pending operation")

// applyOperation replays one queued write against the gateway. Insert
// collisions fall back to an update (the row reached the remote on an
// earlier, interrupted drain) and update misses fall back to an insert, so a
// replayed queue converges instead of erroring.
func (e *SyncEngine) applyOperation(ctx context.Context, op models.PendingOperation) error {
	switch op.Table {
	case models.TableRestaurants:
		r, err := op.Restaurant()
		if err != nil {
			return fmt.Errorf("%w: %v", errCorruptOperation, err)
		}
		return applyEntityOp(ctx, op.Op, op.EntityID,
			func() error { return e.gateway.InsertRestaurant(ctx, r) },
			func() error { return e.gateway.UpdateRestaurant(ctx, r) },
			func() error { return e.gateway.DeleteRestaurant(ctx, op.EntityID) })

	case models.TableMenuItems:
		m, err := op.MenuItem()
		if err != nil {
			return fmt.Errorf("%w: %v", errCorruptOperation, err)
		}
		return applyEntityOp(ctx, op.Op, op.EntityID,
			func() error { return e.gateway.InsertMenuItem(ctx, m) },
			func() error { return e.gateway.UpdateMenuItem(ctx, m) },
			func() error { return e.gateway.DeleteMenuItem(ctx, op.EntityID) })

	case models.TableRatings:
		r, err := op.Rating()
		if err != nil {
			return fmt.Errorf("%w: %v", errCorruptOperation, err)
		}
		return applyEntityOp(ctx, op.Op, op.EntityID,
			func() error { return e.gateway.InsertRating(ctx, r) },
			func() error { return e.gateway.UpdateRating(ctx, r) },
			func() error { return e.gateway.DeleteRating(ctx, op.EntityID) })

	case models.TableDeviceRatings:
		d, err := op.DeviceRating()
		if err != nil {
			return fmt.Errorf("%w: %v", errCorruptOperation, err)
		}
		if op.Op != models.OpInsert {
			return fmt.Errorf("%w: device ratings only support insert, got %s", errCorruptOperation, op.Op)
		}
		return e.gateway.InsertDeviceRating(ctx, d)

	default:
		return fmt.Errorf("%w: unknown table %q", errCorruptOperation, op.Table)
	}
}

// applyEntityOp dispatches one op kind with the convergence fallbacks.
func applyEntityOp(_ context.Context, kind models.OpKind, id string, insert, update, remove func() error) error {
	switch kind {
	case models.OpInsert:
		err := insert()
		if errors.Is(err, adapter.ErrAlreadyExists) {
			// The row landed on an earlier drain attempt; replay as an
			// update so the latest payload wins.
			if upErr := update(); upErr == nil {
				return nil
			} else if errors.Is(upErr, adapter.ErrNotFound) {
				// A different row owns the unique constraint: genuine
				// duplicate, surface the original error.
				return err
			} else {
				return upErr
			}
		}
		return err

	case models.OpUpdate:
		err := update()
		if errors.Is(err, adapter.ErrNotFound) {
			return insert()
		}
		return err

	case models.OpDelete:
		err := remove()
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return err

	default:
		return fmt.Errorf("%w: unknown op kind %q for %s", errCorruptOperation, kind, id)
	}
}

// markPushed flips the local row to synced after its operation reached the
// remote store, and refreshes the parent aggregate for rating writes.
func (e *SyncEngine) markPushed(ctx context.Context, op models.PendingOperation) {
	if op.Op == models.OpDelete {
		return
	}

	var err error
	switch op.Table {
	case models.TableRestaurants:
		err = e.storages.Restaurants.SetSyncStatus(ctx, op.EntityID, models.StatusSynced)
	case models.TableMenuItems:
		err = e.storages.MenuItems.SetSyncStatus(ctx, op.EntityID, models.StatusSynced)
	case models.TableRatings:
		err = e.storages.Ratings.SetSyncStatus(ctx, op.EntityID, models.StatusSynced)
	case models.TableDeviceRatings:
		err = e.storages.DeviceRatings.SetSyncStatus(ctx, op.EntityID, models.StatusSynced)
	}
	if err != nil {
		e.logger.Err(err).Str("op", op.ID).Msg("failed to mark entity synced")
	}

	if op.Table == models.TableRatings || op.Table == models.TableDeviceRatings {
		e.refreshAggregate(ctx, op)
	}
}

// refreshAggregate recomputes the parent restaurant's weighted rating after a
// drained rating write, best-effort.
func (e *SyncEngine) refreshAggregate(ctx context.Context, op models.PendingOperation) {
	restaurantID := restaurantIDFromOp(op)
	if restaurantID == "" {
		return
	}

	if err := recomputeRemoteAggregate(ctx, e.gateway, restaurantID); err != nil {
		e.logger.Err(err).Str("restaurant", restaurantID).Msg("failed to refresh remote aggregate")
	}
}

func restaurantIDFromOp(op models.PendingOperation) string {
	switch op.Table {
	case models.TableRatings:
		if r, err := op.Rating(); err == nil {
			return r.RestaurantID
		}
	case models.TableDeviceRatings:
		if d, err := op.DeviceRating(); err == nil {
			return d.RestaurantID
		}
	}
	return ""
}

// ── Pull phase ──────────────────────────────────────────────────────────────

func (e *SyncEngine) pullRestaurants(ctx context.Context, res *models.SyncResult) {
	remote, err := e.gateway.ListRestaurants(ctx)
	if err != nil {
		res.FailedCount++
		res.Errors = append(res.Errors, fmt.Sprintf("pull restaurants: %v", err))
		return
	}

	for i := range remote {
		r := remote[i]
		local, err := e.storages.Restaurants.GetByID(ctx, r.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			r.SyncStatus = models.StatusSynced
			if err = e.storages.Restaurants.Upsert(ctx, &r); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("save restaurant %s: %v", r.ID, err))
				continue
			}
			res.SyncedCount++

		case err != nil:
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("read restaurant %s: %v", r.ID, err))

		case local.SyncStatus != models.StatusSynced:
			// Local edits take precedence until pushed or resolved.
			continue

		case e.withinTolerance(local.UpdatedAt, r.UpdatedAt):
			r.SyncStatus = models.StatusSynced
			if err = e.storages.Restaurants.Upsert(ctx, &r); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("save restaurant %s: %v", r.ID, err))
				continue
			}
			res.SyncedCount++

		default:
			e.handleRestaurantConflict(ctx, local, r, res)
		}
	}
}

func (e *SyncEngine) pullMenuItems(ctx context.Context, res *models.SyncResult) {
	remote, err := e.gateway.ListMenuItems(ctx)
	if err != nil {
		res.FailedCount++
		res.Errors = append(res.Errors, fmt.Sprintf("pull menu items: %v", err))
		return
	}

	for i := range remote {
		m := remote[i]
		local, err := e.storages.MenuItems.GetByID(ctx, m.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			m.SyncStatus = models.StatusSynced
			if err = e.storages.MenuItems.Upsert(ctx, &m); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("save menu item %s: %v", m.ID, err))
				continue
			}
			res.SyncedCount++

		case err != nil:
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("read menu item %s: %v", m.ID, err))

		case local.SyncStatus != models.StatusSynced:
			continue

		case e.withinTolerance(local.UpdatedAt, m.UpdatedAt):
			m.SyncStatus = models.StatusSynced
			if err = e.storages.MenuItems.Upsert(ctx, &m); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("save menu item %s: %v", m.ID, err))
				continue
			}
			res.SyncedCount++

		default:
			e.handleMenuItemConflict(ctx, local, m, res)
		}
	}
}

func (e *SyncEngine) pullRatings(ctx context.Context, res *models.SyncResult) {
	remote, err := e.gateway.ListRatings(ctx)
	if err != nil {
		res.FailedCount++
		res.Errors = append(res.Errors, fmt.Sprintf("pull ratings: %v", err))
		return
	}

	for i := range remote {
		r := remote[i]
		local, err := e.storages.Ratings.GetByID(ctx, r.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			r.SyncStatus = models.StatusSynced
			if err = e.storages.Ratings.Upsert(ctx, &r); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("save rating %s: %v", r.ID, err))
				continue
			}
			res.SyncedCount++

		case err != nil:
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("read rating %s: %v", r.ID, err))

		case local.SyncStatus != models.StatusSynced:
			continue

		case e.withinTolerance(local.UpdatedAt, r.UpdatedAt):
			r.SyncStatus = models.StatusSynced
			if err = e.storages.Ratings.Upsert(ctx, &r); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("save rating %s: %v", r.ID, err))
				continue
			}
			res.SyncedCount++

		default:
			e.handleRatingConflict(ctx, local, r, res)
		}
	}
}

// withinTolerance reports whether two updated_at stamps describe the same
// state: divergence at or below the tolerance window is not a conflict.
func (e *SyncEngine) withinTolerance(local, remote time.Time) bool {
	delta := local.Sub(remote)
	if delta < 0 {
		delta = -delta
	}
	return delta <= e.tolerance
}
