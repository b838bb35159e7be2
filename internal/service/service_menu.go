package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/internal/store"
	"github.com/dinespot/dinesync/models"
)

// MenuService handles menu item CRUD for a restaurant's menu.
type MenuService struct {
	logger   *logger.Logger
	storages *store.Storages
	gateway  adapter.RemoteGateway
	policy   *OfflinePolicy
}

func NewMenuService(storages *store.Storages, gateway adapter.RemoteGateway, policy *OfflinePolicy, log *logger.Logger) *MenuService {
	return &MenuService{logger: log, storages: storages, gateway: gateway, policy: policy}
}

func (s *MenuService) Create(ctx context.Context, m *models.MenuItem) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if s.policy.ShouldUseOfflineMode(ctx) {
		s.logger.Debug().Str("item", m.ID).Msg("queueing menu item create offline")
		return s.storages.MenuItems.UpsertWithPending(ctx, m, models.OpInsert)
	}

	if err := s.gateway.InsertMenuItem(ctx, *m); err != nil {
		return err
	}
	m.SyncStatus = models.StatusSynced
	if err := s.storages.MenuItems.Upsert(ctx, m); err != nil {
		return fmt.Errorf("mirror menu item %s: %w", m.ID, err)
	}
	return nil
}

func (s *MenuService) Update(ctx context.Context, m *models.MenuItem) error {
	m.UpdatedAt = time.Now().UTC()

	if s.policy.ShouldUseOfflineMode(ctx) {
		return s.storages.MenuItems.UpsertWithPending(ctx, m, models.OpUpdate)
	}

	if err := s.gateway.UpdateMenuItem(ctx, *m); err != nil {
		return err
	}
	m.SyncStatus = models.StatusSynced
	if err := s.storages.MenuItems.Upsert(ctx, m); err != nil {
		return fmt.Errorf("mirror menu item %s: %w", m.ID, err)
	}
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if s.policy.ShouldUseOfflineMode(ctx) {
		return s.storages.MenuItems.DeleteWithPending(ctx, id)
	}

	if err := s.gateway.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	if err := s.storages.MenuItems.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove mirrored menu item %s: %w", id, err)
	}
	return nil
}

func (s *MenuService) Get(ctx context.Context, id string) (models.MenuItem, error) {
	return s.storages.MenuItems.GetByID(ctx, id)
}

func (s *MenuService) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	return s.storages.MenuItems.ListByRestaurant(ctx, restaurantID)
}
