// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type changeTracker struct {
	store store.SyncStore
	now   func() time.Time
}

func NewChangeTracker(syncStore store.SyncStore) ChangeTracker {
	return &changeTracker{store: syncStore, now: time.Now}
}

func (c *changeTracker) QueueChange(ctx context.Context, note *models.Note, op models.Operation) error {
	if note == nil || note.ID == "" {
		return fmt.Errorf("%w: missing note or note id", ErrInvalidNote)
	}
	if op != models.OperationCreate && op != models.OperationUpdate {
		return fmt.Errorf("%w: %q cannot carry a note", ErrInvalidOperation, op)
	}
	if note.Sync == nil || note.Sync.Version <= 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotStamped, note.ID)
	}

	change := models.QueuedChange{
		NoteID:    note.ID,
		Operation: op,
		Version:   note.Sync.Version,
		Payload:   note.Clone(),
		QueuedAt:  c.now(),
	}
	if err := c.store.QueueChange(ctx, change); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*changeTracker.QueueChange").
			Str("note_id", note.ID).
			Str("operation", string(op)).
			Msg("failed to queue change")
		return fmt.Errorf("queue %s of %s: %w", op, note.ID, err)
	}

	logger.FromContext(ctx).Debug().
		Str("note_id", note.ID).
		Str("operation", string(op)).
		Int64("version", change.Version).
		Msg("change queued")
	return nil
}

func (c *changeTracker) QueueDelete(ctx context.Context, noteID string, version int64) error {
	if noteID == "" {
		return fmt.Errorf("%w: missing note id", ErrInvalidNote)
	}

	change := models.QueuedChange{
		NoteID:    noteID,
		Operation: models.OperationDelete,
		Version:   version,
		QueuedAt:  c.now(),
	}
	if err := c.store.QueueChange(ctx, change); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*changeTracker.QueueDelete").
			Str("note_id", noteID).
			Msg("failed to queue delete")
		return fmt.Errorf("queue delete of %s: %w", noteID, err)
	}
	return nil
}

func (c *changeTracker) PendingCount(ctx context.Context) (int, error) {
	n, err := c.store.GetQueueSize(ctx)
	if err != nil {
		return 0, fmt.Errorf("pending count: %w", err)
	}
	return n, nil
}
