// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the sync server.
//
// The primary abstraction is [Transport], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPTransport]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrServerUnavailable] for 5xx, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport carries batched pushes and paged pulls to the sync server.
// Implementations bound request latency themselves; the coordinator imposes
// no timeout of its own.
type Transport interface {
	// Push uploads queued changes in one request. A returned error means
	// the whole request failed and nothing may be assumed about the server
	// state; per-note outcomes are reported inside the response.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Pull fetches changes made by other devices after req.SinceSequence.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)
}

// HealthChecker is implemented by transports that can cheaply tell whether
// the server is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}
