package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock

// SyncService is the server side of the sync protocol.
type SyncService interface {
	// Push applies a batch of device changes and reports a per-note verdict.
	// An error is returned only when the request as a whole is unusable.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Pull returns one page of changes made by other devices after the
	// requested sequence.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
