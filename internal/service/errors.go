package service

import "errors"

var (
	// ErrConflictNotFound is returned by Resolve for a note without a
	// stored conflict.
	ErrConflictNotFound = errors.New("conflict not found")

	ErrInvalidResolution = errors.New("invalid conflict resolution")
	ErrInvalidOperation  = errors.New("invalid change operation")

	// ErrNoteNotStamped is returned when a note without sync metadata is
	// queued. Notes get their metadata from the engine before queuing.
	ErrNoteNotStamped = errors.New("note has no sync metadata")

	ErrInvalidNote = errors.New("invalid note")
)

// Server-side errors.
var (
	// ErrInvalidSyncRequest is returned for a push or pull request that
	// cannot be processed at all, e.g. one without a device id.
	ErrInvalidSyncRequest = errors.New("invalid sync request")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Literal cycle messages reported in models.SyncResult.Errors.
const (
	MsgSyncInProgress = "Sync already in progress"
	MsgOffline        = "Offline"
)

// ConflictMessage is the cycle message emitted for a newly detected conflict.
func ConflictMessage(noteID string) string {
	return "Conflict detected for note " + noteID
}
