package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing application-level secrets
	// (the token signing key or the password hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDispatchConfigs indicates invalid dispatcher settings
	// (for example, a zero worker count or queue size).
	ErrInvalidDispatchConfigs = errors.New("invalid dispatch configuration")
)
