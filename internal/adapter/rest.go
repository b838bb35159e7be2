package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dinespot/dinesync/models"
)

// RESTConfig configures the PostgREST-style gateway.
type RESTConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// restGateway talks to a Supabase-like REST API: one resource per table,
// `column=eq.value` filters, JSON rows.
type restGateway struct {
	client *resty.Client
	tokens TokenSource
}

// NewRESTGateway constructs the REST [RemoteGateway].
func NewRESTGateway(cfg RESTConfig, tokens TokenSource) RemoteGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		cli.SetHeader("apikey", cfg.APIKey)
	}

	return &restGateway{client: cli, tokens: tokens}
}

func (g *restGateway) request(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if g.tokens != nil {
		if token, err := g.tokens.AccessToken(ctx); err == nil && token != "" {
			req.SetAuthToken(token)
		}
	}
	return req
}

// selectAll fetches the full snapshot of a table into out.
func (g *restGateway) selectAll(ctx context.Context, table string, query map[string]string, out any) error {
	req := g.request(ctx).SetQueryParam("select", "*")
	for k, v := range query {
		req.SetQueryParam(k, v)
	}

	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("%w: select %s: %v", ErrUnavailable, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s rows: %w", table, err)
	}
	return nil
}

func (g *restGateway) insert(ctx context.Context, table string, row any) error {
	resp, err := g.request(ctx).SetBody(stripSyncStatus(row)).Post("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrUnavailable, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (g *restGateway) update(ctx context.Context, table, id string, patch any) error {
	resp, err := g.request(ctx).
		SetQueryParam("id", "eq."+id).
		SetBody(patch).
		Patch("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", ErrUnavailable, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("update %s/%s: %w", table, id, err)
	}
	return nil
}

func (g *restGateway) delete(ctx context.Context, table, id string) error {
	resp, err := g.request(ctx).
		SetQueryParam("id", "eq."+id).
		Delete("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrUnavailable, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete %s/%s: %w", table, id, err)
	}
	return nil
}

// ListRestaurants implements [RemoteGateway].
func (g *restGateway) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var out []models.Restaurant
	if err := g.selectAll(ctx, "restaurants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertRestaurant implements [RemoteGateway].
func (g *restGateway) InsertRestaurant(ctx context.Context, r models.Restaurant) error {
	return g.insert(ctx, "restaurants", r)
}

// UpdateRestaurant implements [RemoteGateway].
func (g *restGateway) UpdateRestaurant(ctx context.Context, r models.Restaurant) error {
	return g.update(ctx, "restaurants", r.ID, stripSyncStatus(r))
}

// DeleteRestaurant implements [RemoteGateway].
func (g *restGateway) DeleteRestaurant(ctx context.Context, id string) error {
	return g.delete(ctx, "restaurants", id)
}

// UpdateRestaurantRating implements [RemoteGateway].
func (g *restGateway) UpdateRestaurantRating(ctx context.Context, id string, rating float64, count int) error {
	return g.update(ctx, "restaurants", id, map[string]any{
		"rating":       rating,
		"rating_count": count,
	})
}

// ListMenuItems implements [RemoteGateway].
func (g *restGateway) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var out []models.MenuItem
	if err := g.selectAll(ctx, "menu_items", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertMenuItem implements [RemoteGateway].
func (g *restGateway) InsertMenuItem(ctx context.Context, m models.MenuItem) error {
	return g.insert(ctx, "menu_items", m)
}

// UpdateMenuItem implements [RemoteGateway].
func (g *restGateway) UpdateMenuItem(ctx context.Context, m models.MenuItem) error {
	return g.update(ctx, "menu_items", m.ID, stripSyncStatus(m))
}

// DeleteMenuItem implements [RemoteGateway].
func (g *restGateway) DeleteMenuItem(ctx context.Context, id string) error {
	return g.delete(ctx, "menu_items", id)
}

// ListRatings implements [RemoteGateway].
func (g *restGateway) ListRatings(ctx context.Context) ([]models.Rating, error) {
	var out []models.Rating
	if err := g.selectAll(ctx, "ratings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRestaurantRatings implements [RemoteGateway].
func (g *restGateway) ListRestaurantRatings(ctx context.Context, restaurantID string) ([]models.Rating, error) {
	var out []models.Rating
	if err := g.selectAll(ctx, "ratings", map[string]string{"restaurant_id": "eq." + restaurantID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertRating implements [RemoteGateway].
func (g *restGateway) InsertRating(ctx context.Context, r models.Rating) error {
	return g.insert(ctx, "ratings", r)
}

// UpdateRating implements [RemoteGateway].
func (g *restGateway) UpdateRating(ctx context.Context, r models.Rating) error {
	return g.update(ctx, "ratings", r.ID, stripSyncStatus(r))
}

// DeleteRating implements [RemoteGateway].
func (g *restGateway) DeleteRating(ctx context.Context, id string) error {
	return g.delete(ctx, "ratings", id)
}

// ListDeviceRatings implements [RemoteGateway].
func (g *restGateway) ListDeviceRatings(ctx context.Context, restaurantID string) ([]models.DeviceRating, error) {
	var out []models.DeviceRating
	if err := g.selectAll(ctx, "device_ratings", map[string]string{"restaurant_id": "eq." + restaurantID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertDeviceRating implements [RemoteGateway].
func (g *restGateway) InsertDeviceRating(ctx context.Context, d models.DeviceRating) error {
	return g.insert(ctx, "device_ratings", d)
}

// stripSyncStatus drops the local-only sync_status field before a row leaves
// the device; the remote schema does not carry it.
func stripSyncStatus(row any) map[string]any {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err = json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	delete(m, "sync_status")
	return m
}
