package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a diagnostics server address in format [host]:[port]
//	-p local sqlite database path
//	-b remote backend ("rest" or "postgres")
//	-u remote REST base URL
//	-d remote database DSN (postgres backend)
//	-c/-config json file path with configs
//	-sync-interval periodic sync interval (e.g., "5m")
//	-sync-max-retries drain retry ceiling per queued operation
//	-conflict-tolerance updated_at divergence treated as identical (e.g., "5s")
//	-probe-interval connectivity probe interval (e.g., "10s")
//	-request-timeout outbound gateway request timeout (e.g., "15s")
func ParseFlags() *Config {
	var serverAddress string
	var dbPath string
	var backend string
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var syncInterval time.Duration
	var syncMaxRetries int
	var conflictTolerance time.Duration
	var probeInterval time.Duration
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Diagnostics server address host:port")
	flag.StringVar(&dbPath, "p", "", "Local sqlite database path")
	flag.StringVar(&backend, "b", "", "Remote backend: rest or postgres")
	flag.StringVar(&baseURL, "u", "", "Remote REST base URL")
	flag.StringVar(&databaseDSN, "d", "", "Remote database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.IntVar(&syncMaxRetries, "sync-max-retries", 0, "Drain retry ceiling per queued operation")
	flag.DurationVar(&conflictTolerance, "conflict-tolerance", 0, "Conflict tolerance window (e.g., 5s)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Gateway request timeout (e.g., 15s)")

	flag.Parse()

	return &Config{
		Storage: Storage{
			DBPath: dbPath,
		},
		Remote: Remote{
			Backend:        backend,
			BaseURL:        baseURL,
			DatabaseDSN:    databaseDSN,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			MaxRetries:        syncMaxRetries,
			ConflictTolerance: conflictTolerance,
			Interval:          syncInterval,
		},
		Network: Network{
			ProbeInterval: probeInterval,
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
