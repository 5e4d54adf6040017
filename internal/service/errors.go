package service

import "errors"

var (
	// ErrInvalidSessionData is returned by Login when the identity or
	// credential is empty. The pair is set and cleared together, never one
	// without the other.
	ErrInvalidSessionData = errors.New("invalid session data provided")

	// ErrNotAuthenticated is returned by leave operations invoked without a
	// logged-in session.
	ErrNotAuthenticated = errors.New("user is not authenticated")

	// ErrPersistSession wraps a durable-write failure during Login. The
	// in-memory session is established regardless.
	ErrPersistSession = errors.New("failed to persist session")

	// ErrClearSession wraps a durable-delete failure during Logout. The
	// in-memory session is cleared regardless.
	ErrClearSession = errors.New("failed to clear persisted session")

	// ErrAuthenticate wraps failures of the credential exchange step of the
	// login flow.
	ErrAuthenticate = errors.New("login failed")

	// ErrFetchProfile wraps failures of the identity fetch step of the login
	// flow.
	ErrFetchProfile = errors.New("failed to fetch profile")

	// ErrSubmitLeave wraps a rejected or failed leave application.
	ErrSubmitLeave = errors.New("failed to submit leave request")
)
