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

// RestaurantService handles restaurant CRUD with the same routing rules as
// ratings: direct gateway writes while online, queued local writes when the
// offline policy allows it. Reads always come from the local mirror.
type RestaurantService struct {
	logger   *logger.Logger
	storages *store.Storages
	gateway  adapter.RemoteGateway
	policy   *OfflinePolicy
}

func NewRestaurantService(storages *store.Storages, gateway adapter.RemoteGateway, policy *OfflinePolicy, log *logger.Logger) *RestaurantService {
	return &RestaurantService{logger: log, storages: storages, gateway: gateway, policy: policy}
}

func (s *RestaurantService) Create(ctx context.Context, r *models.Restaurant) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	if s.policy.ShouldUseOfflineMode(ctx) {
		s.logger.Debug().Str("restaurant", r.ID).Msg("queueing restaurant create offline")
		return s.storages.Restaurants.UpsertWithPending(ctx, r, models.OpInsert)
	}

	if err := s.gateway.InsertRestaurant(ctx, *r); err != nil {
		return err
	}
	r.SyncStatus = models.StatusSynced
	if err := s.storages.Restaurants.Upsert(ctx, r); err != nil {
		return fmt.Errorf("mirror restaurant %s: %w", r.ID, err)
	}
	return nil
}

func (s *RestaurantService) Update(ctx context.Context, r *models.Restaurant) error {
	r.UpdatedAt = time.Now().UTC()

	if s.policy.ShouldUseOfflineMode(ctx) {
		return s.storages.Restaurants.UpsertWithPending(ctx, r, models.OpUpdate)
	}

	if err := s.gateway.UpdateRestaurant(ctx, *r); err != nil {
		return err
	}
	r.SyncStatus = models.StatusSynced
	if err := s.storages.Restaurants.Upsert(ctx, r); err != nil {
		return fmt.Errorf("mirror restaurant %s: %w", r.ID, err)
	}
	return nil
}

func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	if s.policy.ShouldUseOfflineMode(ctx) {
		return s.storages.Restaurants.DeleteWithPending(ctx, id)
	}

	if err := s.gateway.DeleteRestaurant(ctx, id); err != nil {
		return err
	}
	if err := s.storages.Restaurants.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove mirrored restaurant %s: %w", id, err)
	}
	return nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (models.Restaurant, error) {
	return s.storages.Restaurants.GetByID(ctx, id)
}

func (s *RestaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	return s.storages.Restaurants.List(ctx)
}
