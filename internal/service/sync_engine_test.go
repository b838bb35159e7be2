package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/internal/mock"
	"github.com/dinespot/dinesync/internal/netmon"
	"github.com/dinespot/dinesync/internal/store"
	"github.com/dinespot/dinesync/models"
)

type engineMocks struct {
	restaurants   *mock.MockRestaurantRepository
	menuItems     *mock.MockMenuItemRepository
	ratings       *mock.MockRatingRepository
	deviceRatings *mock.MockDeviceRatingRepository
	queue         *mock.MockPendingQueue
	gateway       *mock.MockRemoteGateway
	monitor       *netmon.Monitor
}

func newTestEngine(t *testing.T, ctrl *gomock.Controller, cfg EngineConfig) (*SyncEngine, *engineMocks) {
	t.Helper()

	m := &engineMocks{
		restaurants:   mock.NewMockRestaurantRepository(ctrl),
		menuItems:     mock.NewMockMenuItemRepository(ctrl),
		ratings:       mock.NewMockRatingRepository(ctrl),
		deviceRatings: mock.NewMockDeviceRatingRepository(ctrl),
		queue:         mock.NewMockPendingQueue(ctrl),
		gateway:       mock.NewMockRemoteGateway(ctrl),
		monitor:       netmon.NewMonitor(nil, logger.Nop()),
	}
	m.monitor.SetStatus(context.Background(), netmon.StatusOnline)

	storages := &store.Storages{
		Restaurants:   m.restaurants,
		MenuItems:     m.menuItems,
		Ratings:       m.ratings,
		DeviceRatings: m.deviceRatings,
		Queue:         m.queue,
	}

	engine := NewSyncEngine(storages, m.gateway, m.monitor, cfg, logger.Nop())
	return engine, m
}

func mustPayload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

// noPull disables the pull phase so push behaviour can be tested in
// isolation.
func noPull() models.SyncOptions {
	off := false
	return models.SyncOptions{
		SyncRestaurants: &off,
		SyncMenuItems:   &off,
		SyncRatings:     &off,
	}
}

// ── Guards ──────────────────────────────────────────────────────────────────

func TestSyncEngine_Sync_RejectsWhenOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	m.monitor.SetStatus(context.Background(), netmon.StatusOffline)

	res := engine.Sync(context.Background(), models.SyncOptions{})

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], ErrOffline.Error())
}

func TestSyncEngine_Sync_RejectsConcurrentPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})

	release := make(chan struct{})
	firstRunning := make(chan struct{})
	m.queue.EXPECT().ListPending(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.PendingOperation, error) {
			close(firstRunning)
			<-release
			return nil, nil
		})

	firstDone := make(chan models.SyncResult, 1)
	go func() {
		firstDone <- engine.Sync(context.Background(), noPull())
	}()

	<-firstRunning
	second := engine.Sync(context.Background(), noPull())
	close(release)
	first := <-firstDone

	assert.True(t, first.Success)
	assert.False(t, second.Success)
	require.Len(t, second.Errors, 1)
	assert.Contains(t, second.Errors[0], ErrSyncInProgress.Error())
}

// ── Push phase ──────────────────────────────────────────────────────────────

func TestSyncEngine_PushPending_DrainsInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	rating := models.Rating{ID: "r1", RestaurantID: "rest1", UserID: "u1", Stars: 4}
	op := models.PendingOperation{
		ID:       "op1",
		Table:    models.TableRatings,
		Op:       models.OpInsert,
		EntityID: "r1",
		Payload:  mustPayload(t, rating),
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	m.gateway.EXPECT().InsertRating(ctx, gomock.Any()).Return(nil)
	m.queue.EXPECT().RemovePending(ctx, "op1", 0).Return(true, nil)
	m.ratings.EXPECT().SetSyncStatus(ctx, "r1", models.StatusSynced).Return(nil)
	// Aggregate refresh after a drained rating write.
	m.gateway.EXPECT().ListRestaurantRatings(ctx, "rest1").Return([]models.Rating{{Stars: 4}}, nil)
	m.gateway.EXPECT().ListDeviceRatings(ctx, "rest1").Return(nil, nil)
	m.gateway.EXPECT().UpdateRestaurantRating(ctx, "rest1", 4.0, 1).Return(nil)

	res := engine.Sync(ctx, noPull())

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.SyncedCount)
	assert.Zero(t, res.FailedCount)
}

func TestSyncEngine_PushPending_InsertCollisionReplaysAsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	item := models.MenuItem{ID: "m1", RestaurantID: "rest1", Name: "Pad Thai"}
	op := models.PendingOperation{
		ID:       "op1",
		Table:    models.TableMenuItems,
		Op:       models.OpInsert,
		EntityID: "m1",
		Payload:  mustPayload(t, item),
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	// The row reached the remote on an earlier interrupted drain.
	m.gateway.EXPECT().InsertMenuItem(ctx, gomock.Any()).Return(adapter.ErrAlreadyExists)
	m.gateway.EXPECT().UpdateMenuItem(ctx, gomock.Any()).Return(nil)
	m.queue.EXPECT().RemovePending(ctx, "op1", 0).Return(true, nil)
	m.menuItems.EXPECT().SetSyncStatus(ctx, "m1", models.StatusSynced).Return(nil)

	res := engine.Sync(ctx, noPull())

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.SyncedCount)
}

func TestSyncEngine_PushPending_GenuineDuplicateIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	rating := models.Rating{ID: "r1", RestaurantID: "rest1", UserID: "u1", Stars: 5}
	op := models.PendingOperation{
		ID:       "op1",
		Table:    models.TableRatings,
		Op:       models.OpInsert,
		EntityID: "r1",
		Payload:  mustPayload(t, rating),
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	// Another row owns the (restaurant, user) uniqueness: the fallback update
	// misses, so the operation can never succeed.
	m.gateway.EXPECT().InsertRating(ctx, gomock.Any()).Return(adapter.ErrAlreadyExists)
	m.gateway.EXPECT().UpdateRating(ctx, gomock.Any()).Return(adapter.ErrNotFound)
	m.queue.EXPECT().RemovePending(ctx, "op1", 0).Return(true, nil)

	res := engine.Sync(ctx, noPull())

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailedCount)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "dropped")
}

func TestSyncEngine_PushPending_TransientFailureIncrementsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	restaurant := models.Restaurant{ID: "rest1", Name: "Blue Basil"}
	op := models.PendingOperation{
		ID:       "op1",
		Table:    models.TableRestaurants,
		Op:       models.OpUpdate,
		EntityID: "rest1",
		Payload:  mustPayload(t, restaurant),
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	m.gateway.EXPECT().UpdateRestaurant(ctx, gomock.Any()).Return(adapter.ErrUnavailable)
	m.queue.EXPECT().IncrementRetry(ctx, "op1").Return(nil)

	res := engine.Sync(ctx, noPull())

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailedCount)
}

func TestSyncEngine_PushPending_DropsAtRetryCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{MaxRetries: 3})
	ctx := context.Background()

	op := models.PendingOperation{
		ID:         "op1",
		Table:      models.TableRestaurants,
		Op:         models.OpUpdate,
		EntityID:   "rest1",
		Payload:    mustPayload(t, models.Restaurant{ID: "rest1"}),
		RetryCount: 3,
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	// No gateway call: the operation is removed before its fourth attempt.
	m.queue.EXPECT().RemovePending(ctx, "op1", 0).Return(true, nil)

	res := engine.Sync(ctx, noPull())

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "retry ceiling")
}

func TestSyncEngine_PushPending_DeleteMissIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	op := models.PendingOperation{
		ID:       "op1",
		Table:    models.TableMenuItems,
		Op:       models.OpDelete,
		EntityID: "m1",
		Payload:  mustPayload(t, models.MenuItem{ID: "m1"}),
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	m.gateway.EXPECT().DeleteMenuItem(ctx, "m1").Return(adapter.ErrNotFound)
	m.queue.EXPECT().RemovePending(ctx, "op1", 0).Return(true, nil)

	res := engine.Sync(ctx, noPull())

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.SyncedCount)
}

func TestSyncEngine_PushPending_CorruptPayloadIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	op := models.PendingOperation{
		ID:       "op1",
		Table:    models.TableRatings,
		Op:       models.OpInsert,
		EntityID: "r1",
		Payload:  json.RawMessage(`{not json`),
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	m.queue.EXPECT().RemovePending(ctx, "op1", 0).Return(true, nil)

	res := engine.Sync(ctx, noPull())

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailedCount)
}

func TestSyncEngine_PushPending_FoldedMidDrainStaysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	rating := models.Rating{ID: "r1", RestaurantID: "rest1", UserID: "u1", Stars: 3}
	op := models.PendingOperation{
		ID:       "op1",
		Table:    models.TableRatings,
		Op:       models.OpInsert,
		EntityID: "r1",
		Payload:  mustPayload(t, rating),
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	m.gateway.EXPECT().InsertRating(ctx, gomock.Any()).Return(nil)
	// A newer edit folded into the entry while the insert was in flight: the
	// conditional delete misses and the entity must stay pending. No
	// SetSyncStatus and no aggregate refresh.
	m.queue.EXPECT().RemovePending(ctx, "op1", 0).Return(false, nil)

	res := engine.Sync(ctx, noPull())

	assert.True(t, res.Success)
	assert.Zero(t, res.SyncedCount)
	assert.Zero(t, res.FailedCount)
}

func TestSyncEngine_PushPending_FoldedEntrySurvivesRetryCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{MaxRetries: 3})
	ctx := context.Background()

	op := models.PendingOperation{
		ID:         "op1",
		Table:      models.TableRestaurants,
		Op:         models.OpUpdate,
		EntityID:   "rest1",
		Payload:    mustPayload(t, models.Restaurant{ID: "rest1"}),
		RetryCount: 3,
		Revision:   1,
	}

	m.queue.EXPECT().ListPending(ctx).Return([]models.PendingOperation{op}, nil)
	// Folded since listing: the entry carries fresh state with retry_count 0,
	// so the drop misses and nothing is reported lost.
	m.queue.EXPECT().RemovePending(ctx, "op1", 1).Return(false, nil)

	res := engine.Sync(ctx, noPull())

	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
}

func TestSyncEngine_OnlineTransitionDrainsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()
	m.monitor.SetStatus(ctx, netmon.StatusOffline)

	ops := []models.PendingOperation{
		{
			ID: "op1", Table: models.TableRestaurants, Op: models.OpInsert, EntityID: "rest1",
			Payload: mustPayload(t, models.Restaurant{ID: "rest1", Name: "Blue Basil"}),
		},
		{
			ID: "op2", Table: models.TableMenuItems, Op: models.OpUpdate, EntityID: "m1",
			Payload: mustPayload(t, models.MenuItem{ID: "m1", RestaurantID: "rest1"}),
		},
	}

	m.queue.EXPECT().ListPending(gomock.Any()).Return(ops, nil)
	m.gateway.EXPECT().InsertRestaurant(gomock.Any(), gomock.Any()).Return(nil)
	m.queue.EXPECT().RemovePending(gomock.Any(), "op1", 0).Return(true, nil)
	m.restaurants.EXPECT().SetSyncStatus(gomock.Any(), "rest1", models.StatusSynced).Return(nil)
	m.gateway.EXPECT().UpdateMenuItem(gomock.Any(), gomock.Any()).Return(nil)
	m.queue.EXPECT().RemovePending(gomock.Any(), "op2", 0).Return(true, nil)
	m.menuItems.EXPECT().SetSyncStatus(gomock.Any(), "m1", models.StatusSynced).Return(nil)

	var results []models.SyncResult
	engine.AddSyncListener(func(res models.SyncResult) {
		results = append(results, res)
	})
	m.monitor.OnOnline(func(hookCtx context.Context) {
		engine.Sync(hookCtx, noPull())
	})

	m.monitor.SetStatus(ctx, netmon.StatusOnline)

	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, 2, results[0].SyncedCount)
}

// ── Pull phase ──────────────────────────────────────────────────────────────

func TestSyncEngine_Pull_SavesUnknownRestaurant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	off := false
	opts := models.SyncOptions{SyncMenuItems: &off, SyncRatings: &off}
	remote := models.Restaurant{ID: "rest1", Name: "Blue Basil", UpdatedAt: time.Now().UTC()}

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.gateway.EXPECT().ListRestaurants(ctx).Return([]models.Restaurant{remote}, nil)
	m.restaurants.EXPECT().GetByID(ctx, "rest1").Return(models.Restaurant{}, store.ErrNotFound)
	m.restaurants.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.Restaurant) error {
			assert.Equal(t, models.StatusSynced, r.SyncStatus)
			return nil
		})

	res := engine.Sync(ctx, opts)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.SyncedCount)
}

func TestSyncEngine_Pull_NeverClobbersPendingRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	off := false
	opts := models.SyncOptions{SyncMenuItems: &off, SyncRatings: &off}
	remote := models.Restaurant{ID: "rest1", Name: "Remote Name", UpdatedAt: time.Now().UTC()}
	local := models.Restaurant{ID: "rest1", Name: "Local Edit", SyncStatus: models.StatusPending}

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.gateway.EXPECT().ListRestaurants(ctx).Return([]models.Restaurant{remote}, nil)
	m.restaurants.EXPECT().GetByID(ctx, "rest1").Return(local, nil)
	// No Upsert expectation: the pending row must stay untouched.

	res := engine.Sync(ctx, opts)

	assert.True(t, res.Success)
	assert.Zero(t, res.SyncedCount)
}

func TestSyncEngine_Pull_ToleranceWindowIsNotAConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{ConflictTolerance: 5 * time.Second})
	ctx := context.Background()

	off := false
	opts := models.SyncOptions{SyncMenuItems: &off, SyncRatings: &off}
	now := time.Now().UTC()
	remote := models.Restaurant{ID: "rest1", Name: "Blue Basil", UpdatedAt: now}
	local := models.Restaurant{ID: "rest1", Name: "Blue Basil", UpdatedAt: now.Add(-4 * time.Second), SyncStatus: models.StatusSynced}

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.gateway.EXPECT().ListRestaurants(ctx).Return([]models.Restaurant{remote}, nil)
	m.restaurants.EXPECT().GetByID(ctx, "rest1").Return(local, nil)
	m.restaurants.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	res := engine.Sync(ctx, opts)

	assert.True(t, res.Success)
	assert.Empty(t, engine.Conflicts())
}

func TestSyncEngine_Pull_LastWriteWins_RemoteNewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{ConflictTolerance: 5 * time.Second})
	ctx := context.Background()

	off := false
	opts := models.SyncOptions{SyncMenuItems: &off, SyncRatings: &off}
	now := time.Now().UTC()
	remote := models.Restaurant{ID: "rest1", Name: "Remote Name", UpdatedAt: now}
	local := models.Restaurant{ID: "rest1", Name: "Stale Name", UpdatedAt: now.Add(-time.Minute), SyncStatus: models.StatusSynced}

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.gateway.EXPECT().ListRestaurants(ctx).Return([]models.Restaurant{remote}, nil)
	m.restaurants.EXPECT().GetByID(ctx, "rest1").Return(local, nil)
	m.restaurants.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.Restaurant) error {
			assert.Equal(t, "Remote Name", r.Name)
			assert.Equal(t, models.StatusSynced, r.SyncStatus)
			return nil
		})

	res := engine.Sync(ctx, opts)

	assert.True(t, res.Success)
	assert.Empty(t, engine.Conflicts())
}

func TestSyncEngine_Pull_LastWriteWins_LocalNewerPushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{ConflictTolerance: 5 * time.Second})
	ctx := context.Background()

	off := false
	opts := models.SyncOptions{SyncMenuItems: &off, SyncRatings: &off}
	now := time.Now().UTC()
	remote := models.Restaurant{ID: "rest1", Name: "Stale Remote", UpdatedAt: now.Add(-time.Minute)}
	local := models.Restaurant{ID: "rest1", Name: "Fresh Local", UpdatedAt: now, SyncStatus: models.StatusSynced}

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.gateway.EXPECT().ListRestaurants(ctx).Return([]models.Restaurant{remote}, nil)
	m.restaurants.EXPECT().GetByID(ctx, "rest1").Return(local, nil)
	m.gateway.EXPECT().UpdateRestaurant(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Restaurant) error {
			assert.Equal(t, "Fresh Local", r.Name)
			return nil
		})

	res := engine.Sync(ctx, opts)

	assert.True(t, res.Success)
}

func TestSyncEngine_Pull_RatingConflictAwaitsManualResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{ConflictTolerance: 5 * time.Second})
	ctx := context.Background()

	off := false
	opts := models.SyncOptions{SyncRestaurants: &off, SyncMenuItems: &off}
	now := time.Now().UTC()
	remote := models.Rating{ID: "r1", RestaurantID: "rest1", UserID: "u1", Stars: 5, UpdatedAt: now}
	local := models.Rating{ID: "r1", RestaurantID: "rest1", UserID: "u1", Stars: 2, UpdatedAt: now.Add(-time.Minute), SyncStatus: models.StatusSynced}

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)
	m.gateway.EXPECT().ListRatings(ctx).Return([]models.Rating{remote}, nil)
	m.ratings.EXPECT().GetByID(ctx, "r1").Return(local, nil)
	m.ratings.EXPECT().SetSyncStatus(ctx, "r1", models.StatusConflict).Return(nil)

	res := engine.Sync(ctx, opts)

	assert.True(t, res.Success)
	conflicts := engine.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.TableRatings, conflicts[0].Table)
	assert.Equal(t, "r1", conflicts[0].EntityID)
}

// ── Listeners ───────────────────────────────────────────────────────────────

func TestSyncEngine_Listeners_NotifiedAndUnsubscribed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil).Times(2)

	var got []models.SyncResult
	unsubscribe := engine.AddSyncListener(func(res models.SyncResult) {
		got = append(got, res)
	})

	engine.Sync(ctx, noPull())
	require.Len(t, got, 1)
	assert.True(t, got[0].Success)

	unsubscribe()
	engine.Sync(ctx, noPull())
	assert.Len(t, got, 1)

	last, ok := engine.LastResult()
	require.True(t, ok)
	assert.True(t, last.Success)
}

func TestSyncEngine_Listeners_OfflineRejectionIsBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()
	m.monitor.SetStatus(ctx, netmon.StatusOffline)

	var got []models.SyncResult
	engine.AddSyncListener(func(res models.SyncResult) {
		got = append(got, res)
	})

	engine.Sync(ctx, noPull())

	require.Len(t, got, 1)
	assert.False(t, got[0].Success)
	require.Len(t, got[0].Errors, 1)
	assert.Contains(t, got[0].Errors[0], ErrOffline.Error())

	last, ok := engine.LastResult()
	require.True(t, ok)
	assert.False(t, last.Success)
}

func TestSyncEngine_Listeners_PanicDoesNotAbortSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	m.queue.EXPECT().ListPending(ctx).Return(nil, nil)

	engine.AddSyncListener(func(models.SyncResult) { panic("listener bug") })
	notified := false
	engine.AddSyncListener(func(models.SyncResult) { notified = true })

	res := engine.Sync(ctx, noPull())

	assert.True(t, res.Success)
	assert.True(t, notified)
}

// ── Error propagation ───────────────────────────────────────────────────────

func TestSyncEngine_Sync_ListPendingFailureFailsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	ctx := context.Background()

	m.queue.EXPECT().ListPending(ctx).Return(nil, errors.New("disk gone"))

	res := engine.Sync(ctx, noPull())

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailedCount)
}
