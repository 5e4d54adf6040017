// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PageSize <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.TokenSignKey == "" || cfg.TokenDuration == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
