// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the two client cores: the session service, which
// owns the authenticated identity/credential pair and its durable copy, and
// the leave service, which synchronizes the paginated leave-request list
// against the server.
//
// Both services expose a snapshot accessor plus a synchronous subscription
// mechanism; the presentation layer renders from snapshots and re-renders on
// broadcast. Neither service ever panics across its operation boundary: a
// failed operation leaves the relevant state unchanged and reports the
// failure through the returned error (and, for list fetches, through
// [SyncState.LastError]).
package service

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientSessionService owns the process-wide session: the identity/credential
// pair, its durable persistence, and the ready flag that gates authenticated
// work.
//
// State machine: UNINITIALIZED -> (Initialize) -> logged out or logged in;
// Login and Logout then toggle between the two ready states. Initialize runs
// exactly once for the process lifetime.
type ClientSessionService interface {
	// Initialize performs the single best-effort durable read of the two
	// session keys. Ready becomes true when it returns, whether or not the
	// read succeeded; a failed or malformed read degrades to logged out.
	// The returned error is diagnostic only.
	Initialize(ctx context.Context) error

	// Authenticate runs the full login flow: exchange credentials for a
	// token, fetch the identity it belongs to, then establish the session
	// via Login. Nothing is stored if any step fails.
	Authenticate(ctx context.Context, email, password string) error

	// Login establishes a session from an already-obtained identity and
	// credential. Both are persisted durably, then set in memory. The
	// in-memory session is established even when persistence fails; the
	// returned error reports only the persistence outcome so the caller can
	// log it.
	Login(ctx context.Context, identity models.User, credential models.Token) error

	// Logout clears the durable keys and the in-memory session. Memory is
	// cleared even when the durable delete fails: logout must never leave a
	// stale credential visible.
	Logout(ctx context.Context) error

	// UpdateProfile pushes the edited identity to the server and, on
	// success, re-establishes the session with the updated identity and the
	// unchanged credential.
	UpdateProfile(ctx context.Context, identity models.User) error

	// State returns the current session snapshot.
	State() SessionState

	// Subscribe registers fn to be called synchronously after every session
	// state change. The returned function cancels the subscription.
	Subscribe(fn func(SessionState)) (unsubscribe func())
}

// ClientLeaveService synchronizes one paginated leave-request collection into
// a single in-memory list.
//
// At most one page fetch is in flight per service instance: LoadNext coalesces
// while a fetch is running, and Refresh invalidates any in-flight LoadNext by
// advancing the state generation so the stale response is dropped on arrival.
type ClientLeaveService interface {
	// LoadNext fetches the next page and appends it in server order. It is a
	// no-op when a fetch is already in flight or the collection is
	// exhausted. A failed fetch records the error and leaves the page
	// unconsumed, so the next call retries the same page.
	LoadNext(ctx context.Context) error

	// Refresh resets the list to an empty first-page state and replays page
	// one, toggling the refreshing flag instead of loading.
	Refresh(ctx context.Context) error

	// Submit sends a new leave application. On success it triggers exactly
	// one Refresh and returns nil; on failure the list state is untouched
	// and the server's message is carried in the returned error.
	Submit(ctx context.Context, form models.LeaveRequestForm) error

	// State returns the current synchronizer snapshot.
	State() SyncState

	// Subscribe registers fn to be called synchronously after every sync
	// state change. The returned function cancels the subscription.
	Subscribe(fn func(SyncState)) (unsubscribe func())
}
