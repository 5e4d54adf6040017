// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's durable storage layer.
//
// The only persistence the application needs is a small string key-value
// table holding the serialized session fields ("identity" and "credential").
// It is backed by a local SQLite database so that a session survives process
// restarts on the device.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueRepository is the durable key-value primitive the session service
// persists through. All reads and writes are best-effort from the caller's
// point of view: a failure degrades the session to in-memory only and is
// never fatal.
type KeyValueRepository interface {
	// Get returns the value stored under key, or a wrapped [ErrKeyNotFound]
	// if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
