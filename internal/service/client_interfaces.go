package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ChangeTracker turns local note mutations into queued changes. It never
// touches the network.
type ChangeTracker interface {
	// QueueChange queues a snapshot of note under its current sync version.
	// A later call for the same note replaces the earlier entry.
	QueueChange(ctx context.Context, note *models.Note, op models.Operation) error

	// QueueDelete queues the deletion of noteID at version.
	QueueDelete(ctx context.Context, noteID string, version int64) error

	// PendingCount returns the number of live queued changes.
	PendingCount(ctx context.Context) (int, error)
}

// ConflictResolver decides whether two versions of a note diverged and
// settles stored conflicts. Its only state lives in the store.
type ConflictResolver interface {
	// HasConflict reports whether remote is strictly newer than local by
	// version and differs from it by content.
	HasConflict(local, remote *models.Note, localVersion, remoteVersion int64) bool

	// DetectConflict stores (overwriting) and returns a conflict when
	// HasConflict holds; otherwise it returns nil.
	DetectConflict(ctx context.Context, local, remote *models.Note, localVersion, remoteVersion int64,
		conflictType models.ConflictType) (*models.Conflict, error)

	// TryAutoResolve picks a side when both edits are close enough in time
	// to be considered one logical edit. ok is false otherwise.
	TryAutoResolve(conflict models.Conflict) (resolution models.Resolution, ok bool)

	// Resolve removes the stored conflict and returns the notes the caller
	// has to persist.
	Resolve(ctx context.Context, noteID string, resolution models.Resolution) (*models.ResolvedConflict, error)
}

// CycleRunner runs one full sync cycle.
type CycleRunner interface {
	// RunSyncCycle pushes the queue and then pulls remote changes. It
	// never returns an error; failures are reported in the result.
	RunSyncCycle(ctx context.Context) models.SyncResult
}

// SyncCoordinator runs push/pull cycles. At most one cycle is in flight.
type SyncCoordinator interface {
	CycleRunner
	PushChanges(ctx context.Context) models.SyncResult
	PullChanges(ctx context.Context) models.SyncResult

	// ApplyResolution resolves a conflict and reconciles the vault and the
	// store with the chosen outcome.
	ApplyResolution(ctx context.Context, noteID string, resolution models.Resolution) (*models.ResolvedConflict, error)

	Progress() models.SyncProgress
}

// SyncJob periodically runs sync cycles in the background.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
	Running() bool
}

// VaultMigrator prepares a pre-existing vault for its first sync.
type VaultMigrator interface {
	NeedsMigration(ctx context.Context) (bool, error)
	MigrateVault(ctx context.Context) (models.MigrationResult, error)
}
