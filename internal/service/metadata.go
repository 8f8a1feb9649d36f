package service

import (
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// StampNote returns a copy of note with its sync version advanced by one,
// a fresh content hash and deviceID as the author. Server version and sync
// time are carried over unchanged.
func StampNote(note *models.Note, deviceID string) *models.Note {
	if note == nil {
		return nil
	}

	stamped := note.Clone()
	meta := models.SyncMetadata{}
	if stamped.Sync != nil {
		meta = *stamped.Sync
	}
	meta.Version++
	meta.ContentHash = utils.ContentHash(stamped)
	meta.DeviceID = deviceID
	stamped.Sync = &meta

	return stamped
}

// withNoteID returns a copy of note filed under id. The note id of a sync
// change is authoritative over the id inside its payload.
func withNoteID(note *models.Note, id string) *models.Note {
	if note == nil {
		return nil
	}
	c := note.Clone()
	c.ID = id
	return c
}
