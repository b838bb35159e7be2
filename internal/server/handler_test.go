package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/internal/mock"
	"github.com/dinespot/dinesync/internal/netmon"
	"github.com/dinespot/dinesync/internal/service"
	"github.com/dinespot/dinesync/internal/store"
	"github.com/dinespot/dinesync/models"
)

type handlerMocks struct {
	restaurants *mock.MockRestaurantRepository
	ratings     *mock.MockRatingRepository
	queue       *mock.MockPendingQueue
	gateway     *mock.MockRemoteGateway
	roles       *mock.MockRoleProvider
	monitor     *netmon.Monitor
	engine      *service.SyncEngine
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *handlerMocks) {
	t.Helper()

	m := &handlerMocks{
		restaurants: mock.NewMockRestaurantRepository(ctrl),
		ratings:     mock.NewMockRatingRepository(ctrl),
		queue:       mock.NewMockPendingQueue(ctrl),
		gateway:     mock.NewMockRemoteGateway(ctrl),
		roles:       mock.NewMockRoleProvider(ctrl),
		monitor:     netmon.NewMonitor(nil, logger.Nop()),
	}
	m.monitor.SetStatus(context.Background(), netmon.StatusOnline)

	storages := &store.Storages{
		Restaurants:   m.restaurants,
		MenuItems:     mock.NewMockMenuItemRepository(ctrl),
		Ratings:       m.ratings,
		DeviceRatings: mock.NewMockDeviceRatingRepository(ctrl),
		Queue:         m.queue,
	}

	m.engine = service.NewSyncEngine(storages, m.gateway, m.monitor, service.EngineConfig{}, logger.Nop())
	policy := service.NewOfflinePolicy(m.roles, m.monitor, logger.Nop())
	services := Services{
		Restaurants: service.NewRestaurantService(storages, m.gateway, policy, logger.Nop()),
		Menu:        service.NewMenuService(storages, m.gateway, policy, logger.Nop()),
		Ratings:     service.NewRatingService(storages, m.gateway, policy, logger.Nop()),
	}

	return NewHandler(m.engine, m.queue, m.monitor, services, logger.Nop()), m
}

func TestHandler_Healthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.queue.EXPECT().Len(gomock.Any()).Return(3, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Network)
	assert.Equal(t, 3, resp.PendingOps)
	assert.False(t, resp.SyncHasRun)
}

func TestHandler_TriggerSync_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.queue.EXPECT().ListPending(gomock.Any()).Return(nil, nil)
	m.gateway.EXPECT().ListRestaurants(gomock.Any()).Return(nil, nil)
	m.gateway.EXPECT().ListMenuItems(gomock.Any()).Return(nil, nil)
	m.gateway.EXPECT().ListRatings(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res models.SyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
}

func TestHandler_TriggerSync_OfflineIsBadGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.monitor.SetStatus(context.Background(), netmon.StatusOffline)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_TriggerSync_MalformedOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(`{broken`))
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Conflicts_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conflicts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_ResolveConflict_UnknownConflictIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/conflicts/ratings/r1/resolve", strings.NewReader(`{"resolution":"keep_local"}`))
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ResolveConflict_UnknownTableIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/conflicts/users/u1/resolve", strings.NewReader(`{"resolution":"keep_local"}`))
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SubmitRating_DuplicateIs409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.gateway.EXPECT().InsertRating(gomock.Any(), gomock.Any()).Return(adapter.ErrAlreadyExists)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ratings", strings.NewReader(`{"restaurant_id":"rest1","user_id":"u1","stars":4}`))
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_SubmitRating_InvalidStarsIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ratings", strings.NewReader(`{"restaurant_id":"rest1","user_id":"u1","stars":9}`))
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetRestaurant_NotFoundIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.restaurants.EXPECT().GetByID(gomock.Any(), "missing").Return(models.Restaurant{}, store.ErrNotFound)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ListRestaurants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.restaurants.EXPECT().List(gomock.Any()).Return([]models.Restaurant{{ID: "rest1", Name: "Blue Basil"}}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/restaurants", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Blue Basil", got[0].Name)
}
