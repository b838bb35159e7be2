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

// RatingService handles registered-user ratings and anonymous device
// ratings. Online writes go straight to the gateway and refresh the parent
// restaurant's aggregate; offline-eligible writes land in the local mirror
// with a queued pending operation and succeed optimistically.
type RatingService struct {
	logger   *logger.Logger
	storages *store.Storages
	gateway  adapter.RemoteGateway
	policy   *OfflinePolicy
}

func NewRatingService(storages *store.Storages, gateway adapter.RemoteGateway, policy *OfflinePolicy, log *logger.Logger) *RatingService {
	return &RatingService{logger: log, storages: storages, gateway: gateway, policy: policy}
}

func validStars(stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("%w: %d", ErrInvalidStars, stars)
	}
	return nil
}

// Submit records a new rating. A user may rate a restaurant once; a second
// submission surfaces adapter.ErrAlreadyExists unchanged so the caller can
// offer an update instead.
func (s *RatingService) Submit(ctx context.Context, r *models.Rating) error {
	if err := validStars(r.Stars); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	if s.policy.ShouldUseOfflineMode(ctx) {
		s.logger.Debug().Str("rating", r.ID).Msg("queueing rating submission offline")
		return s.storages.Ratings.UpsertWithPending(ctx, r, models.OpInsert)
	}

	if err := s.gateway.InsertRating(ctx, *r); err != nil {
		return err
	}
	r.SyncStatus = models.StatusSynced
	if err := s.storages.Ratings.Upsert(ctx, r); err != nil {
		return fmt.Errorf("mirror rating %s: %w", r.ID, err)
	}
	s.refreshAggregate(ctx, r.RestaurantID)
	return nil
}

// Update replaces an existing rating's stars and comment.
func (s *RatingService) Update(ctx context.Context, r *models.Rating) error {
	if err := validStars(r.Stars); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()

	if s.policy.ShouldUseOfflineMode(ctx) {
		return s.storages.Ratings.UpsertWithPending(ctx, r, models.OpUpdate)
	}

	if err := s.gateway.UpdateRating(ctx, *r); err != nil {
		return err
	}
	r.SyncStatus = models.StatusSynced
	if err := s.storages.Ratings.Upsert(ctx, r); err != nil {
		return fmt.Errorf("mirror rating %s: %w", r.ID, err)
	}
	s.refreshAggregate(ctx, r.RestaurantID)
	return nil
}

// Delete removes a rating locally and remotely.
func (s *RatingService) Delete(ctx context.Context, id string) error {
	r, err := s.storages.Ratings.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.policy.ShouldUseOfflineMode(ctx) {
		return s.storages.Ratings.DeleteWithPending(ctx, id)
	}

	if err = s.gateway.DeleteRating(ctx, id); err != nil {
		return err
	}
	if err = s.storages.Ratings.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove mirrored rating %s: %w", id, err)
	}
	s.refreshAggregate(ctx, r.RestaurantID)
	return nil
}

// GetUserRating returns this user's rating for one restaurant from the local
// mirror, queued edits included.
func (s *RatingService) GetUserRating(ctx context.Context, restaurantID, userID string) (models.Rating, error) {
	return s.storages.Ratings.GetByUser(ctx, restaurantID, userID)
}

// GetForRestaurant lists all locally known ratings for a restaurant.
func (s *RatingService) GetForRestaurant(ctx context.Context, restaurantID string) ([]models.Rating, error) {
	return s.storages.Ratings.ListByRestaurant(ctx, restaurantID)
}

// SubmitDeviceRating records an anonymous rating keyed by device ID. Device
// ratings are insert-only; there is no update or delete path.
func (s *RatingService) SubmitDeviceRating(ctx context.Context, d *models.DeviceRating) error {
	if err := validStars(d.Stars); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	if s.policy.ShouldUseOfflineMode(ctx) {
		s.logger.Debug().Str("device", d.DeviceID).Msg("queueing device rating offline")
		return s.storages.DeviceRatings.UpsertWithPending(ctx, d, models.OpInsert)
	}

	if err := s.gateway.InsertDeviceRating(ctx, *d); err != nil {
		return err
	}
	d.SyncStatus = models.StatusSynced
	if err := s.storages.DeviceRatings.Upsert(ctx, d); err != nil {
		return fmt.Errorf("mirror device rating %s: %w", d.ID, err)
	}
	s.refreshAggregate(ctx, d.RestaurantID)
	return nil
}

// refreshAggregate is best-effort: a failed recompute leaves a slightly stale
// average that the next rating write or sync pass corrects.
func (s *RatingService) refreshAggregate(ctx context.Context, restaurantID string) {
	if err := recomputeRemoteAggregate(ctx, s.gateway, restaurantID); err != nil {
		s.logger.Err(err).Str("restaurant", restaurantID).Msg("failed to refresh rating aggregate")
	}
}
