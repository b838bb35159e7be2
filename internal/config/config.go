// Package config assembles the dinesync runtime configuration from three
// layered sources: environment variables (caarlos0/env), command-line flags,
// and an optional JSON file. Layers are merged with mergo, earlier layers
// taking precedence (env > flags > json).
package config

import (
	"time"
)

// Config is the top-level configuration container for the sync daemon.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the remote gateway settings (REST or direct Postgres).
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds sync engine tunables.
	Sync Sync `envPrefix:"SYNC_"`

	// Network holds connectivity monitor settings.
	Network Network `envPrefix:"NETWORK_"`

	// Server holds the diagnostics HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// underneath env and flag values. Populated via CONFIG or -c/-config.
	JSONFilePath string `env:"CONFIG"`
}

// Storage contains local database settings.
type Storage struct {
	// DBPath is the path of the on-device sqlite database file.
	// Env: STORAGE_DB_PATH
	DBPath string `env:"DB_PATH"`
}

// Remote configures how the daemon reaches the remote system of record.
type Remote struct {
	// Backend selects the gateway implementation: "rest" (PostgREST-style
	// HTTP API) or "postgres" (direct pgx connection).
	// Env: REMOTE_BACKEND
	Backend string `env:"BACKEND"`

	// BaseURL is the REST gateway base URL (rest backend only).
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as the apikey header on every REST request.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// AccessToken is the bearer token carrying the caller's role claim.
	// Env: REMOTE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// DatabaseDSN is the Postgres connection string (postgres backend only).
	// Env: REMOTE_DATABASE_DSN
	DatabaseDSN string `env:"DATABASE_DSN"`

	// RequestTimeout bounds every outbound gateway request.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync contains sync engine tunables. The defaults mirror the observed
// behaviour of the mobile application: three drain attempts per queued
// operation and a five second conflict tolerance window.
type Sync struct {
	// MaxRetries is the drain retry ceiling per pending operation.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// ConflictTolerance is the updated_at divergence below which local and
	// remote rows are treated as the same state.
	// Env: SYNC_CONFLICT_TOLERANCE
	ConflictTolerance time.Duration `env:"CONFLICT_TOLERANCE"`

	// Interval is the background periodic sync interval.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Network contains connectivity monitor settings.
type Network struct {
	// ProbeInterval is how often the monitor polls the connectivity probe.
	// Env: NETWORK_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeURL is the endpoint used to establish reachability.
	// Env: NETWORK_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`
}

// Server contains the diagnostics HTTP server settings.
type Server struct {
	// HTTPAddress is the listen address of the diagnostics server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetConfig builds the merged configuration and applies defaults for any
// value left unset by all three layers.
func GetConfig() (*Config, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *Config) applyDefaults() {
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = "dinesync.db"
	}
	if cfg.Remote.Backend == "" {
		cfg.Remote.Backend = "rest"
	}
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = 15 * time.Second
	}
	if cfg.Sync.MaxRetries <= 0 {
		cfg.Sync.MaxRetries = 3
	}
	if cfg.Sync.ConflictTolerance <= 0 {
		cfg.Sync.ConflictTolerance = 5 * time.Second
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = 5 * time.Minute
	}
	if cfg.Network.ProbeInterval <= 0 {
		cfg.Network.ProbeInterval = 10 * time.Second
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8090"
	}
}
