// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for communicating
// with the rendezvous server.
//
// The rendezvous server is a dumb relay: it stores opaque encrypted blobs
// tagged with a per-group global index and hands them back on polling. The
// primary abstraction is [ServerAdapter]; the package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-group-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the rendezvous server.
// Implementations are responsible for serialisation, request signing, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// Connect registers the member and publishes its current key package.
	Connect(ctx context.Context, req models.ConnectRequest) error

	// CreateGroup announces a newly created group.
	CreateGroup(ctx context.Context, req models.CreateGroupRequest) error

	// GetUserKeyPackages fetches the key packages of several members in one
	// round trip. Members unknown to the server are absent from the result.
	GetUserKeyPackages(ctx context.Context, req models.GetUserKeysRequest) (map[models.MemberID][]byte, error)

	// InviteUser delivers one sealed invite to its recipient.
	InviteUser(ctx context.Context, req models.InviteUserRequest) error

	// GetNewMessages returns the records at or after req.Index, either of one
	// group or, without a group, of the member's invite inbox.
	GetNewMessages(ctx context.Context, req models.GetNewMessagesRequest) ([]models.Message, error)

	// SendMessage posts one encrypted message at req.GlobalIndex. The server
	// rejects an already occupied index with [ErrConflict].
	SendMessage(ctx context.Context, req models.SendMessageRequest) error
}
