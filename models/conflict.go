// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConflictType describes which side edited and which side deleted a note.
// It is always supplied by the caller that detected the conflict.
type ConflictType string

const (
	// ConflictTypeEdit means both sides edited the note.
	ConflictTypeEdit ConflictType = "edit"
	// ConflictTypeDeleteEdit means the local side deleted a note that the
	// remote side edited.
	ConflictTypeDeleteEdit ConflictType = "delete-edit"
	// ConflictTypeEditDelete means the local side edited a note that the
	// remote side deleted.
	ConflictTypeEditDelete ConflictType = "edit-delete"
)

// Conflict is an open divergence between the local and remote copy of a
// note. There is at most one open conflict per note.
type Conflict struct {
	NoteID string `json:"note_id"`

	// LocalNote is nil when the local side deleted the note.
	LocalNote *Note `json:"local_note,omitempty"`

	// RemoteNote is nil when the remote side deleted the note.
	RemoteNote *Note `json:"remote_note,omitempty"`

	LocalVersion  int64        `json:"local_version"`
	RemoteVersion int64        `json:"remote_version"`
	DetectedAt    time.Time    `json:"detected_at"`
	Type          ConflictType `json:"type"`
}

// Resolution is the user's (or auto-resolver's) decision for a conflict.
type Resolution string

const (
	ResolutionKeepLocal  Resolution = "keep_local"
	ResolutionKeepRemote Resolution = "keep_remote"
	ResolutionKeepBoth   Resolution = "keep_both"
)

// Valid reports whether r is a known resolution.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionKeepLocal, ResolutionKeepRemote, ResolutionKeepBoth:
		return true
	}
	return false
}

// ResolvedConflict is the outcome of resolving a conflict.
type ResolvedConflict struct {
	// Primary is the authoritative note for the conflicted id. It is nil
	// when the chosen side is a deletion.
	Primary *Note

	// Copy is the synthesized duplicate created by keep_both, nil otherwise.
	Copy *Note

	// Conflict is the record that was resolved and removed from the store.
	Conflict Conflict
}
