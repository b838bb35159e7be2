package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dinespot/dinesync/models"
)

func TestSyncJob_RunsPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})

	var passes atomic.Int32
	m.queue.EXPECT().ListPending(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.PendingOperation, error) {
			passes.Add(1)
			return nil, nil
		}).MinTimes(2)
	m.gateway.EXPECT().ListRestaurants(gomock.Any()).Return(nil, nil).AnyTimes()
	m.gateway.EXPECT().ListMenuItems(gomock.Any()).Return(nil, nil).AnyTimes()
	m.gateway.EXPECT().ListRatings(gomock.Any()).Return(nil, nil).AnyTimes()

	job := NewSyncJob(engine)
	job.Start(context.Background(), 10*time.Millisecond)

	assert.Eventually(t, func() bool { return passes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSyncJob_StopBeforeStartIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newTestEngine(t, ctrl, EngineConfig{})
	job := NewSyncJob(engine)

	// Must not block or panic.
	job.Stop()
	job.Stop()
}

func TestSyncJob_ContextCancellationStopsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, m := newTestEngine(t, ctrl, EngineConfig{})
	m.queue.EXPECT().ListPending(gomock.Any()).Return(nil, nil).AnyTimes()
	m.gateway.EXPECT().ListRestaurants(gomock.Any()).Return(nil, nil).AnyTimes()
	m.gateway.EXPECT().ListMenuItems(gomock.Any()).Return(nil, nil).AnyTimes()
	m.gateway.EXPECT().ListRatings(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewSyncJob(engine)
	job.Start(ctx, 10*time.Millisecond)

	cancel()
	// Stop joins the goroutine; returning proves the loop observed the
	// cancelled context.
	job.Stop()
}
