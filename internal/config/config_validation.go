package config

import "fmt"

// validate checks that the merged [Config] satisfies the invariants the
// daemon relies on at startup. Defaults have already been applied, so only
// cross-field consistency is checked here.
func (cfg *Config) validate() error {
	if cfg.Storage.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Remote.Backend {
	case "rest":
		if cfg.Remote.BaseURL == "" {
			return fmt.Errorf("%w: rest backend requires a base URL", ErrInvalidRemoteConfigs)
		}
	case "postgres":
		if cfg.Remote.DatabaseDSN == "" {
			return fmt.Errorf("%w: postgres backend requires a database DSN", ErrInvalidRemoteConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidRemoteConfigs, cfg.Remote.Backend)
	}

	return nil
}
