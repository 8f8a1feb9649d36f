// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the per-note synchronisation status kept in the sync store.
type SyncStatus string

const (
	// SyncStatusPending means an unconfirmed local change exists.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSynced means the server confirmed the current local version.
	SyncStatusSynced SyncStatus = "synced"
)

// SyncState is the store-owned bookkeeping row for one note.
//
// Invariants:
//   - Status == synced  => ServerVersion == LocalVersion and LastSyncedAt != nil;
//   - Status == pending => an unconfirmed local change exists.
type SyncState struct {
	NoteID        string     `json:"note_id"`
	LocalVersion  int64      `json:"local_version"`
	ServerVersion *int64     `json:"server_version,omitempty"`
	ContentHash   string     `json:"content_hash"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
	Status        SyncStatus `json:"status"`
}

// IsPending reports whether the note has an unconfirmed local change.
func (s *SyncState) IsPending() bool {
	return s != nil && s.Status == SyncStatusPending
}

// Operation is the kind of local mutation carried by a queued change.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Valid reports whether op is one of the known operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// QueuedChange is an outbound change waiting to be pushed.
//
// The queue is keyed by NoteID: queuing a note again before the previous
// entry was sent replaces that entry entirely (last write wins), so there is
// at most one authoritative pending change per note. Versions are assigned
// before queuing, which lets the server still recognise a stale push.
type QueuedChange struct {
	// NoteID is the queue key.
	NoteID string `json:"note_id"`

	// Operation is the mutation to replay on the server.
	Operation Operation `json:"operation"`

	// Version is the local version the change was produced at.
	Version int64 `json:"version"`

	// Payload is the note snapshot. It is nil for deletes.
	Payload *Note `json:"payload,omitempty"`

	// Attempts counts failed push attempts for this entry.
	Attempts int `json:"attempts"`

	// LastError is the last per-note error reported by the server.
	LastError string `json:"last_error,omitempty"`

	// QueuedAt is the moment the entry was (re)queued.
	QueuedAt time.Time `json:"queued_at"`

	// Dead marks an entry that failed with a non-retryable error. Dead
	// entries are excluded from pushes until the note is queued again.
	Dead bool `json:"dead"`
}
