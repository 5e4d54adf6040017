// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver implements a self-contained stub of the leave-tracker
// HTTP API for local development and manual client testing.
//
// It serves the same endpoints the real backend exposes — login, profile,
// paginated leave applications, leave submission — backed by a single seeded
// demo account and an in-memory record list. Credentials are checked against
// a bcrypt hash and sessions use signed JWT bearer tokens, so the client
// exercises its full authentication path against it.
//
// Nothing survives a restart. This package must never be deployed.
package devserver
