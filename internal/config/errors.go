package config

import "errors"

// Validation errors returned by [Config.validate] when required configuration
// groups are incomplete or inconsistent.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote gateway settings (for
	// example, an unknown backend, or a rest backend without a base URL).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
