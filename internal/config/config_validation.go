// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup. The database DSN and both
// process-wide secrets are mandatory; without any of them the process must
// not start.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.PasswordHashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Dispatch.Workers < 1 || cfg.Dispatch.QueueSize < 1 {
		return ErrInvalidDispatchConfigs
	}

	return nil
}
