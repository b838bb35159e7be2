package models

import "time"

// SyncStatus tags every locally mirrored row with its relation to the remote
// system of record.
type SyncStatus string

const (
	// StatusSynced means the local row matches the last known remote state.
	StatusSynced SyncStatus = "synced"
	// StatusPending means the row carries local edits that have not reached
	// the remote store yet. A pending row always has a corresponding queue
	// entry.
	StatusPending SyncStatus = "pending"
	// StatusConflict means local and remote diverged and the row is waiting
	// for explicit resolution.
	StatusConflict SyncStatus = "conflict"
)

// Restaurant is the mirrored restaurant entity. Rating and RatingCount are
// derived aggregates recomputed after every online rating write.
type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	PriceTier   int        `json:"price_tier"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	ImageURL    string     `json:"image_url"`
	Phone       string     `json:"phone"`
	Website     string     `json:"website"`
	Rating      float64    `json:"rating"`
	RatingCount int        `json:"rating_count"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SyncStatus  SyncStatus `json:"sync_status"`
}

// MenuItem belongs to exactly one restaurant.
type MenuItem struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Category     string     `json:"category"`
	ImageURL     string     `json:"image_url"`
	Available    bool       `json:"available"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	SyncStatus   SyncStatus `json:"sync_status"`
}

// Rating is a registered-user rating. The remote store enforces uniqueness
// per (RestaurantID, UserID); the local mirror carries the same constraint.
type Rating struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	UserID       string     `json:"user_id"`
	Stars        int        `json:"stars"`
	Comment      string     `json:"comment"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	SyncStatus   SyncStatus `json:"sync_status"`
}

// DeviceRating is an anonymous rating keyed by device rather than user.
// It feeds the same weighted aggregate as registered ratings.
type DeviceRating struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	DeviceID     string     `json:"device_id"`
	Stars        int        `json:"stars"`
	CreatedAt    time.Time  `json:"created_at"`
	SyncStatus   SyncStatus `json:"sync_status"`
}
