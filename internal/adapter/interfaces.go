// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the leave-tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401). Whatever human-readable message
// the server attached to a failure is preserved in the error text via
// [ServerMessage].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// leave-tracker server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login and cleared (with an empty string) on logout.
	SetToken(token models.Token)

	// Token returns the bearer token currently stored in the adapter, or the
	// zero token if none has been set yet.
	Token() models.Token

	// Login exchanges email/password credentials for a bearer token via
	// POST user/login. The token is NOT stored automatically: the caller
	// decides whether the login attempt becomes the active session.
	Login(ctx context.Context, creds models.LoginRequest) (models.Token, error)

	// FetchProfile retrieves the authenticated user's identity record via
	// GET user/me using the supplied token (which may differ from the stored
	// one during the login flow).
	FetchProfile(ctx context.Context, token models.Token) (models.User, error)

	// ListLeaveRequests fetches one page of the caller's leave requests via
	// GET user/leave/applications?limit=<limit>&page=<page>. An empty slice
	// with a nil error is the end-of-collection signal.
	ListLeaveRequests(ctx context.Context, page, limit int) ([]models.LeaveRequest, error)

	// CreateLeaveRequest submits a new leave application via
	// POST user/request-leave. The created record (or the server's echo of
	// the form) is returned on success.
	CreateLeaveRequest(ctx context.Context, form models.LeaveRequestForm) (models.LeaveRequest, error)

	// UpdateProfile replaces the authenticated user's identity record via
	// PUT user/me and returns the updated record.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
}
