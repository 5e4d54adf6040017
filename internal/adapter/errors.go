package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes. Callers match with
// [errors.Is]; the server-provided message (if any) travels in the wrapped
// error text and can be recovered with [ServerMessage].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrTransport marks a network-level failure where no response was
	// received at all. Safe to retry by re-invoking the same operation.
	ErrTransport = errors.New("transport failure")
)
