package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "dinesync.db", cfg.Storage.DBPath)
	assert.Equal(t, "rest", cfg.Remote.Backend)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.Sync.ConflictTolerance)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 10*time.Second, cfg.Network.ProbeInterval)
	assert.Equal(t, "localhost:8090", cfg.Server.HTTPAddress)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage: Storage{DBPath: "/var/lib/dinesync/mirror.db"},
		Remote:  Remote{Backend: "postgres"},
		Sync:    Sync{MaxRetries: 7, ConflictTolerance: time.Minute},
	}
	cfg.applyDefaults()

	assert.Equal(t, "/var/lib/dinesync/mirror.db", cfg.Storage.DBPath)
	assert.Equal(t, "postgres", cfg.Remote.Backend)
	assert.Equal(t, 7, cfg.Sync.MaxRetries)
	assert.Equal(t, time.Minute, cfg.Sync.ConflictTolerance)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		remote  Remote
		wantErr error
	}{
		{
			name:   "rest backend with base url",
			remote: Remote{Backend: "rest", BaseURL: "https://api.example.com"},
		},
		{
			name:    "rest backend without base url",
			remote:  Remote{Backend: "rest"},
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:   "postgres backend with dsn",
			remote: Remote{Backend: "postgres", DatabaseDSN: "postgres://localhost/dinespot"},
		},
		{
			name:    "postgres backend without dsn",
			remote:  Remote{Backend: "postgres"},
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "unknown backend",
			remote:  Remote{Backend: "grpc"},
			wantErr: ErrInvalidRemoteConfigs,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := &Config{
				Storage: Storage{DBPath: "dinesync.db"},
				Remote:  test.remote,
			}

			err := cfg.validate()
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := &Config{Remote: Remote{Backend: "rest", BaseURL: "https://api.example.com"}}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"storage": {"db_path": "/tmp/mirror.db"},
		"remote": {
			"backend": "rest",
			"base_url": "https://api.example.com",
			"api_key": "anon-key",
			"request_timeout": "20s"
		},
		"sync": {"max_retries": 5, "conflict_tolerance": "10s", "interval": "1m"},
		"network": {"probe_interval": "30s", "probe_url": "https://api.example.com/healthz"},
		"server": {"http_address": "localhost:9090"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/mirror.db", cfg.Storage.DBPath)
	assert.Equal(t, "rest", cfg.Remote.Backend)
	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, "anon-key", cfg.Remote.APIKey)
	assert.Equal(t, 20*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 5, cfg.Sync.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.Sync.ConflictTolerance)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 30*time.Second, cfg.Network.ProbeInterval)
	assert.Equal(t, "https://api.example.com/healthz", cfg.Network.ProbeURL)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "duration string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanosecond number", input: `1000000000`, want: time.Second},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(test.input)))
			assert.Equal(t, test.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`"not a duration"`)))
}
