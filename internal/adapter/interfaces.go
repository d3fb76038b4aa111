// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-study-keeper document server.
//
// The primary abstraction is [RemoteStore], which decouples the sync layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]) with a WebSocket-based live subscription.
//
// Error values defined in errors.go are mapped from transport failures by
// mapHTTPError and mapTransportError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrPermissionDenied] for 403,
// [ErrUnauthenticated] for 401, [ErrBlockedRequest] for network-level
// interference such as content blockers).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-study-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the per-user cloud document store. All document operations
// are scoped to the authenticated user; the server derives the user from the
// bearer token, so collection names alone address users/{uid}/{collection}.
type RemoteStore interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account and stores the returned token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// GetDocument performs a point read. Returns [ErrNotFound] if the
	// document does not exist.
	GetDocument(ctx context.Context, collection, id string) (models.Document, error)

	// SetDocument performs a point write. With merge set, the server overlays
	// the body's top-level fields onto the existing document instead of
	// replacing it.
	SetDocument(ctx context.Context, collection string, doc models.Document, merge bool) error

	// DeleteDocument removes one document. Deleting an absent document is not
	// an error.
	DeleteDocument(ctx context.Context, collection, id string) error

	// ListCollection returns every document of one collection. An absent or
	// empty collection yields an empty slice, never an error.
	ListCollection(ctx context.Context, collection string) ([]models.Document, error)

	// BatchWrite applies a multi-collection set of writes atomically.
	BatchWrite(ctx context.Context, req models.BatchWriteRequest) error

	// GetUserMeta reads the per-user metadata marker. Returns [ErrNotFound]
	// for a user that has never synced (the "new user" signal).
	GetUserMeta(ctx context.Context) (models.UserMeta, error)

	// SetUserMeta upserts the metadata marker. The server preserves an
	// existing CreatedAt on upsert.
	SetUserMeta(ctx context.Context, meta models.UserMeta) error

	// Subscribe attaches a live subscription to one collection. Every
	// server-side mutation of the collection produces a full-snapshot event.
	// The subscription ends when ctx is cancelled or Close is called.
	Subscribe(ctx context.Context, collection string) (Subscription, error)
}

// Subscription is a cancellable push-based stream of collection snapshots.
type Subscription interface {
	// Snapshots yields one event per server-side mutation. The channel is
	// closed when the subscription ends for any reason.
	Snapshots() <-chan models.SnapshotEvent

	// Err reports why the stream ended, or nil after a clean Close.
	Err() error

	// Close tears the subscription down. No event is delivered after Close
	// returns. Safe to call more than once.
	Close()
}
