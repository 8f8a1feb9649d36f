package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncStore is the durable per-device record of sync bookkeeping: the
// device id, the pull cursor, per-note sync state, the outgoing change
// queue and unresolved conflicts. Note content itself lives in the vault.
//
// Every method that changes more than one row does so in a single
// transaction. Lookups of a missing row return a nil pointer and a nil
// error.
type SyncStore interface {
	// GetDeviceID returns the persisted device id or "" if none is set.
	GetDeviceID(ctx context.Context) (string, error)
	// SetDeviceID persists id unless a device id already exists, and
	// returns whichever id is stored afterwards.
	SetDeviceID(ctx context.Context, id string) (string, error)

	// GetSyncSequence returns the pull cursor (0 when never synced).
	GetSyncSequence(ctx context.Context) (int64, error)
	// SetSyncSequence advances the pull cursor. Lower values are ignored.
	SetSyncSequence(ctx context.Context, seq int64) error

	GetSyncState(ctx context.Context, noteID string) (*models.SyncState, error)
	SetSyncState(ctx context.Context, state models.SyncState) error
	DeleteSyncState(ctx context.Context, noteID string) error
	GetAllSyncStates(ctx context.Context) ([]models.SyncState, error)

	// QueueChange replaces any queued change for the note and marks its
	// sync state pending, keeping the last known server version.
	QueueChange(ctx context.Context, change models.QueuedChange) error
	// GetQueuedChanges lists live (non dead-lettered) changes in queue order.
	GetQueuedChanges(ctx context.Context) ([]models.QueuedChange, error)
	GetQueuedChange(ctx context.Context, noteID string) (*models.QueuedChange, error)
	GetDeadLetters(ctx context.Context) ([]models.QueuedChange, error)
	RemoveQueuedChange(ctx context.Context, noteID string) error
	// GetQueueSize counts live queued changes.
	GetQueueSize(ctx context.Context) (int, error)
	// RecordPushFailure bumps the attempt counter of the queued change with
	// the given version. A non-retryable failure dead-letters it.
	RecordPushFailure(ctx context.Context, noteID string, version int64, reason string, retryable bool) error
	// AcknowledgeChange records a server acceptance of pushedVersion. The
	// queue entry is removed only if it still holds pushedVersion.
	AcknowledgeChange(ctx context.Context, noteID string, pushedVersion, serverVersion int64, at time.Time) error

	StoreConflict(ctx context.Context, conflict models.Conflict) error
	GetConflict(ctx context.Context, noteID string) (*models.Conflict, error)
	GetAllConflicts(ctx context.Context) ([]models.Conflict, error)
	GetConflictCount(ctx context.Context) (int, error)
	RemoveConflict(ctx context.Context, noteID string) error

	Close() error
}
