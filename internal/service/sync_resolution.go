package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

func (c *syncCoordinator) ApplyResolution(ctx context.Context, noteID string, resolution models.Resolution) (*models.ResolvedConflict, error) {
	return c.applyResolution(ctx, noteID, resolution)
}

func (c *syncCoordinator) applyResolution(ctx context.Context, noteID string, resolution models.Resolution) (*models.ResolvedConflict, error) {
	log := logger.FromContext(ctx)

	resolved, err := c.resolver.Resolve(ctx, noteID, resolution)
	if err != nil {
		return nil, err
	}

	switch resolution {
	case models.ResolutionKeepLocal:
		resolved.Primary, err = c.keepLocal(ctx, resolved.Conflict)
	case models.ResolutionKeepRemote:
		resolved.Primary, err = c.keepRemote(ctx, resolved.Conflict)
	case models.ResolutionKeepBoth:
		resolved.Primary, err = c.keepRemote(ctx, resolved.Conflict)
		if err == nil && resolved.Copy != nil {
			resolved.Copy, err = c.saveConflictCopy(ctx, resolved.Copy)
		}
	}
	if err != nil {
		log.Err(err).
			Str("func", "*syncCoordinator.applyResolution").
			Str("note_id", noteID).
			Str("resolution", string(resolution)).
			Msg("failed to apply resolution, restoring conflict")
		if restoreErr := c.store.StoreConflict(ctx, resolved.Conflict); restoreErr != nil {
			log.Err(restoreErr).Str("note_id", noteID).Msg("failed to restore conflict")
		}
		return nil, fmt.Errorf("apply %s to %s: %w", resolution, noteID, err)
	}

	log.Info().Str("note_id", noteID).Str("resolution", string(resolution)).Msg("conflict resolved")
	return resolved, nil
}

// keepLocal re-publishes the local side with a version above the remote one
// so that the next push is accepted.
func (c *syncCoordinator) keepLocal(ctx context.Context, conflict models.Conflict) (*models.Note, error) {
	if conflict.LocalNote == nil {
		version := max(conflict.LocalVersion, conflict.RemoteVersion)
		if state, err := c.store.GetSyncState(ctx, conflict.NoteID); err != nil {
			return nil, err
		} else if state != nil {
			version = max(version, state.LocalVersion)
		}
		return nil, c.tracker.QueueDelete(ctx, conflict.NoteID, version+1)
	}

	current, err := c.vault.ReadNote(ctx, conflict.NoteID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = conflict.LocalNote.Clone()
	}

	base := current.Clone()
	if base.Sync == nil {
		base.Sync = &models.SyncMetadata{}
	}
	base.Sync.Version = max(base.Sync.Version, conflict.RemoteVersion)
	if conflict.RemoteNote != nil {
		sv := conflict.RemoteVersion
		base.Sync.ServerVersion = &sv
	}
	stamped := StampNote(base, c.deviceID)

	if err = c.vault.SaveNote(ctx, stamped); err != nil {
		return nil, err
	}

	op := models.OperationUpdate
	if conflict.RemoteNote == nil {
		op = models.OperationCreate
	}
	if err = c.tracker.QueueChange(ctx, stamped, op); err != nil {
		return nil, err
	}
	return stamped, nil
}

// keepRemote makes the server copy the local truth and forgets the local
// change.
func (c *syncCoordinator) keepRemote(ctx context.Context, conflict models.Conflict) (*models.Note, error) {
	if err := c.store.RemoveQueuedChange(ctx, conflict.NoteID); err != nil {
		return nil, err
	}

	if conflict.RemoteNote == nil {
		if err := c.store.DeleteSyncState(ctx, conflict.NoteID); err != nil {
			return nil, err
		}
		return nil, c.vault.DeleteNote(ctx, conflict.NoteID)
	}

	note := conflict.RemoteNote.Clone()
	note.ID = conflict.NoteID
	if err := c.saveSynced(ctx, note, conflict.RemoteVersion); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *syncCoordinator) saveConflictCopy(ctx context.Context, cp *models.Note) (*models.Note, error) {
	stamped := StampNote(cp, c.deviceID)
	if err := c.vault.SaveNote(ctx, stamped); err != nil {
		return nil, err
	}
	if err := c.tracker.QueueChange(ctx, stamped, models.OperationCreate); err != nil {
		return nil, err
	}
	return stamped, nil
}
