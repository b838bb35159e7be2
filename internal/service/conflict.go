package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/models"
)

// ConflictPolicy selects how divergent rows for an entity type get resolved.
type ConflictPolicy string

const (
	// PolicyLastWriteWins resolves automatically: the side with the later
	// updated_at becomes the accepted value on both sides.
	PolicyLastWriteWins ConflictPolicy = "last_write_wins"
	// PolicyManual parks the conflict until ResolveConflict is called.
	PolicyManual ConflictPolicy = "manual"
)

func conflictKey(table models.EntityTable, id string) string {
	return string(table) + "/" + id
}

// Conflicts returns the unresolved conflicts currently held by the engine.
func (e *SyncEngine) Conflicts() []models.Conflict {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Conflict, 0, len(e.conflicts))
	for _, c := range e.conflicts {
		out = append(out, *c)
	}
	return out
}

func (e *SyncEngine) recordConflict(c *models.Conflict) {
	e.mu.Lock()
	e.conflicts[conflictKey(c.Table, c.EntityID)] = c
	e.mu.Unlock()

	e.logger.Warn().
		Str("table", string(c.Table)).
		Str("entity", c.EntityID).
		Str("kind", string(c.Kind)).
		Msg("conflict detected, awaiting resolution")
}

func (e *SyncEngine) clearConflict(table models.EntityTable, id string) {
	e.mu.Lock()
	delete(e.conflicts, conflictKey(table, id))
	e.mu.Unlock()
}

// classifyConflict reports whether the divergence is in the value fields, the
// timestamps only, or both.
func classifyConflict(local, remote json.RawMessage) models.ConflictKind {
	var l, r map[string]any
	if json.Unmarshal(local, &l) != nil || json.Unmarshal(remote, &r) != nil {
		return models.ConflictBoth
	}

	meta := map[string]bool{"created_at": true, "updated_at": true, "sync_status": true}
	valueDiff := false
	metaDiff := false
	for k, lv := range l {
		rv, ok := r[k]
		same := ok && fmt.Sprint(lv) == fmt.Sprint(rv)
		if same {
			continue
		}
		if meta[k] {
			metaDiff = true
		} else {
			valueDiff = true
		}
	}

	switch {
	case valueDiff && metaDiff:
		return models.ConflictBoth
	case valueDiff:
		return models.ConflictValue
	default:
		return models.ConflictMetadata
	}
}

func newConflict(table models.EntityTable, id string, local, remote any, localAt, remoteAt time.Time) *models.Conflict {
	localRaw, _ := json.Marshal(local)
	remoteRaw, _ := json.Marshal(remote)
	return &models.Conflict{
		Table:           table,
		EntityID:        id,
		Local:           localRaw,
		Remote:          remoteRaw,
		LocalUpdatedAt:  localAt,
		RemoteUpdatedAt: remoteAt,
		Kind:            classifyConflict(localRaw, remoteRaw),
		DetectedAt:      time.Now().UTC(),
	}
}

func (e *SyncEngine) handleRestaurantConflict(ctx context.Context, local, remote models.Restaurant, res *models.SyncResult) {
	if e.policies[models.TableRestaurants] == PolicyManual {
		e.recordConflict(newConflict(models.TableRestaurants, local.ID, local, remote, local.UpdatedAt, remote.UpdatedAt))
		if err := e.storages.Restaurants.SetSyncStatus(ctx, local.ID, models.StatusConflict); err != nil {
			e.logger.Err(err).Str("entity", local.ID).Msg("failed to mark conflict")
		}
		return
	}

	// Last write wins.
	if remote.UpdatedAt.After(local.UpdatedAt) {
		remote.SyncStatus = models.StatusSynced
		if err := e.storages.Restaurants.Upsert(ctx, &remote); err != nil {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("resolve restaurant %s: %v", remote.ID, err))
			return
		}
	} else {
		if err := e.gateway.UpdateRestaurant(ctx, local); err != nil {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("push winning restaurant %s: %v", local.ID, err))
			return
		}
	}
	res.SyncedCount++
}

func (e *SyncEngine) handleMenuItemConflict(ctx context.Context, local, remote models.MenuItem, res *models.SyncResult) {
	if e.policies[models.TableMenuItems] == PolicyManual {
		e.recordConflict(newConflict(models.TableMenuItems, local.ID, local, remote, local.UpdatedAt, remote.UpdatedAt))
		if err := e.storages.MenuItems.SetSyncStatus(ctx, local.ID, models.StatusConflict); err != nil {
			e.logger.Err(err).Str("entity", local.ID).Msg("failed to mark conflict")
		}
		return
	}

	if remote.UpdatedAt.After(local.UpdatedAt) {
		remote.SyncStatus = models.StatusSynced
		if err := e.storages.MenuItems.Upsert(ctx, &remote); err != nil {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("resolve menu item %s: %v", remote.ID, err))
			return
		}
	} else {
		if err := e.gateway.UpdateMenuItem(ctx, local); err != nil {
			res.FailedCount++
			res.Errors = append(res.Errors, fmt.Sprintf("push winning menu item %s: %v", local.ID, err))
			return
		}
	}
	res.SyncedCount++
}

func (e *SyncEngine) handleRatingConflict(ctx context.Context, local, remote models.Rating, res *models.SyncResult) {
	if e.policies[models.TableRatings] == PolicyLastWriteWins {
		if remote.UpdatedAt.After(local.UpdatedAt) {
			remote.SyncStatus = models.StatusSynced
			if err := e.storages.Ratings.Upsert(ctx, &remote); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("resolve rating %s: %v", remote.ID, err))
				return
			}
		} else {
			if err := e.gateway.UpdateRating(ctx, local); err != nil {
				res.FailedCount++
				res.Errors = append(res.Errors, fmt.Sprintf("push winning rating %s: %v", local.ID, err))
				return
			}
		}
		res.SyncedCount++
		return
	}

	e.recordConflict(newConflict(models.TableRatings, local.ID, local, remote, local.UpdatedAt, remote.UpdatedAt))
	if err := e.storages.Ratings.SetSyncStatus(ctx, local.ID, models.StatusConflict); err != nil {
		e.logger.Err(err).Str("entity", local.ID).Msg("failed to mark conflict")
	}
}

// ResolveConflict applies an explicit decision to a parked conflict and
// clears it. Merge is only defined for ratings: the higher star value wins
// and non-empty review text is preferred from either side.
func (e *SyncEngine) ResolveConflict(ctx context.Context, table models.EntityTable, entityID string, resolution models.Resolution) error {
	e.mu.Lock()
	c, ok := e.conflicts[conflictKey(table, entityID)]
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrConflictNotFound, table, entityID)
	}

	var err error
	switch table {
	case models.TableRatings:
		err = e.resolveRatingConflict(ctx, c, resolution)
	case models.TableRestaurants:
		err = e.resolveRestaurantConflict(ctx, c, resolution)
	case models.TableMenuItems:
		err = e.resolveMenuItemConflict(ctx, c, resolution)
	default:
		err = fmt.Errorf("no conflict resolution for table %q", table)
	}
	if err != nil {
		return err
	}

	e.clearConflict(table, entityID)
	return nil
}

func (e *SyncEngine) resolveRatingConflict(ctx context.Context, c *models.Conflict, resolution models.Resolution) error {
	var local, remote models.Rating
	if err := json.Unmarshal(c.Local, &local); err != nil {
		return fmt.Errorf("decode local rating: %w", err)
	}
	if err := json.Unmarshal(c.Remote, &remote); err != nil {
		return fmt.Errorf("decode remote rating: %w", err)
	}

	switch resolution {
	case models.KeepRemote:
		remote.SyncStatus = models.StatusSynced
		return e.storages.Ratings.Upsert(ctx, &remote)

	case models.KeepLocal:
		if err := e.gateway.UpdateRating(ctx, local); err != nil {
			return fmt.Errorf("push kept rating %s: %w", local.ID, err)
		}
		return e.storages.Ratings.SetSyncStatus(ctx, local.ID, models.StatusSynced)

	case models.Merge:
		merged := mergeRatings(local, remote)
		if err := e.gateway.UpdateRating(ctx, merged); err != nil {
			return fmt.Errorf("push merged rating %s: %w", merged.ID, err)
		}
		merged.SyncStatus = models.StatusSynced
		return e.storages.Ratings.Upsert(ctx, &merged)

	default:
		return fmt.Errorf("unknown resolution %q", resolution)
	}
}

func (e *SyncEngine) resolveRestaurantConflict(ctx context.Context, c *models.Conflict, resolution models.Resolution) error {
	var local, remote models.Restaurant
	if err := json.Unmarshal(c.Local, &local); err != nil {
		return fmt.Errorf("decode local restaurant: %w", err)
	}
	if err := json.Unmarshal(c.Remote, &remote); err != nil {
		return fmt.Errorf("decode remote restaurant: %w", err)
	}

	switch resolution {
	case models.KeepRemote:
		remote.SyncStatus = models.StatusSynced
		return e.storages.Restaurants.Upsert(ctx, &remote)
	case models.KeepLocal:
		if err := e.gateway.UpdateRestaurant(ctx, local); err != nil {
			return fmt.Errorf("push kept restaurant %s: %w", local.ID, err)
		}
		return e.storages.Restaurants.SetSyncStatus(ctx, local.ID, models.StatusSynced)
	default:
		return fmt.Errorf("resolution %q not supported for restaurants", resolution)
	}
}

func (e *SyncEngine) resolveMenuItemConflict(ctx context.Context, c *models.Conflict, resolution models.Resolution) error {
	var local, remote models.MenuItem
	if err := json.Unmarshal(c.Local, &local); err != nil {
		return fmt.Errorf("decode local menu item: %w", err)
	}
	if err := json.Unmarshal(c.Remote, &remote); err != nil {
		return fmt.Errorf("decode remote menu item: %w", err)
	}

	switch resolution {
	case models.KeepRemote:
		remote.SyncStatus = models.StatusSynced
		return e.storages.MenuItems.Upsert(ctx, &remote)
	case models.KeepLocal:
		if err := e.gateway.UpdateMenuItem(ctx, local); err != nil {
			return fmt.Errorf("push kept menu item %s: %w", local.ID, err)
		}
		return e.storages.MenuItems.SetSyncStatus(ctx, local.ID, models.StatusSynced)
	default:
		return fmt.Errorf("resolution %q not supported for menu items", resolution)
	}
}

// mergeRatings combines two divergent ratings: max stars, first non-empty
// comment (local preferred), later updated_at.
func mergeRatings(local, remote models.Rating) models.Rating {
	merged := local
	if remote.Stars > merged.Stars {
		merged.Stars = remote.Stars
	}
	if merged.Comment == "" {
		merged.Comment = remote.Comment
	}
	if remote.UpdatedAt.After(merged.UpdatedAt) {
		merged.UpdatedAt = remote.UpdatedAt
	}
	return merged
}

// recomputeRemoteAggregate folds registered and device ratings for one
// restaurant into a single weighted mean and writes it back to the parent
// row.
func recomputeRemoteAggregate(ctx context.Context, gateway adapter.RemoteGateway, restaurantID string) error {
	ratings, err := gateway.ListRestaurantRatings(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("list ratings for aggregate: %w", err)
	}
	deviceRatings, err := gateway.ListDeviceRatings(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("list device ratings for aggregate: %w", err)
	}

	avg, count := combinedRating(ratings, deviceRatings)
	if err = gateway.UpdateRestaurantRating(ctx, restaurantID, avg, count); err != nil {
		return fmt.Errorf("write aggregate: %w", err)
	}
	return nil
}

// combinedRating is the weighted mean over both rating sources, every vote
// counting once.
func combinedRating(ratings []models.Rating, deviceRatings []models.DeviceRating) (float64, int) {
	sum := 0
	count := len(ratings) + len(deviceRatings)
	if count == 0 {
		return 0, 0
	}
	for _, r := range ratings {
		sum += r.Stars
	}
	for _, d := range deviceRatings {
		sum += d.Stars
	}
	return float64(sum) / float64(count), count
}
