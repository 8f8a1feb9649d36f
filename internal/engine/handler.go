package engine

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/vault"
	"github.com/MKhiriev/go-note-sync/models"
)

var _ vault.ChangeHandler = (*Engine)(nil)

// NoteChanged queues an edit made to the vault outside the app. Writes whose
// content still matches their own sync hash come from the sync core and are
// ignored.
func (e *Engine) NoteChanged(ctx context.Context, note *models.Note) error {
	if note == nil {
		return nil
	}
	if note.Sync != nil && note.Sync.ContentHash == utils.ContentHash(note) {
		return nil
	}

	st, _, _, err := e.components()
	if err != nil {
		return err
	}

	op := models.OperationUpdate
	state, err := st.GetSyncState(ctx, note.ID)
	if err != nil {
		return err
	}
	if state == nil {
		op = models.OperationCreate
	}

	stamped := e.AddSyncMetadata(note)
	if err = e.deps.Vault.SaveNote(ctx, stamped); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*Engine.NoteChanged").
			Str("note_id", note.ID).
			Msg("failed to save sync metadata")
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("note_id", note.ID).
		Str("operation", string(op)).
		Int64("version", stamped.Sync.Version).
		Msg("external edit detected")
	return e.QueueChange(ctx, stamped, op)
}

// NoteRemoved queues the deletion of a tracked note whose file disappeared.
func (e *Engine) NoteRemoved(ctx context.Context, noteID string) error {
	st, _, _, err := e.components()
	if err != nil {
		return err
	}

	state, err := st.GetSyncState(ctx, noteID)
	if err != nil {
		return err
	}
	if state == nil {
		// never tracked, or already removed by a pull
		return nil
	}

	if queued, err := st.GetQueuedChange(ctx, noteID); err == nil && queued != nil && queued.Operation == models.OperationDelete {
		return nil
	}
	return e.QueueDelete(ctx, noteID)
}
