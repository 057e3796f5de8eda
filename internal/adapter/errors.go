package adapter

import "errors"

// Sentinel errors mapped from rendezvous server responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrTransport wraps failures that happened before a response arrived
	// (connection refused, timeout, canceled context).
	ErrTransport = errors.New("transport failure")
)
