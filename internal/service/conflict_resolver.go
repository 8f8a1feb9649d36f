// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// DefaultAutoResolveThreshold is the largest edit-time gap TryAutoResolve
// still treats as a single logical edit.
const DefaultAutoResolveThreshold = 5 * time.Second

const conflictCopyTimeLayout = "2006-01-02 15:04:05"

type conflictResolver struct {
	store     store.SyncStore
	ids       utils.IDGenerator
	now       func() time.Time
	threshold time.Duration
}

func NewConflictResolver(syncStore store.SyncStore, ids utils.IDGenerator) ConflictResolver {
	return &conflictResolver{
		store:     syncStore,
		ids:       ids,
		now:       time.Now,
		threshold: DefaultAutoResolveThreshold,
	}
}

func (r *conflictResolver) HasConflict(local, remote *models.Note, localVersion, remoteVersion int64) bool {
	if remoteVersion <= localVersion {
		return false
	}
	return utils.ContentHash(local) != utils.ContentHash(remote)
}

func (r *conflictResolver) DetectConflict(ctx context.Context, local, remote *models.Note, localVersion, remoteVersion int64,
	conflictType models.ConflictType) (*models.Conflict, error) {
	if !r.HasConflict(local, remote, localVersion, remoteVersion) {
		return nil, nil
	}

	noteID := ""
	switch {
	case local != nil:
		noteID = local.ID
	case remote != nil:
		noteID = remote.ID
	}

	conflict := models.Conflict{
		NoteID:        noteID,
		LocalNote:     local.Clone(),
		RemoteNote:    remote.Clone(),
		LocalVersion:  localVersion,
		RemoteVersion: remoteVersion,
		DetectedAt:    r.now(),
		Type:          conflictType,
	}
	if err := r.store.StoreConflict(ctx, conflict); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*conflictResolver.DetectConflict").
			Str("note_id", noteID).
			Msg("failed to store conflict")
		return nil, fmt.Errorf("store conflict for %s: %w", noteID, err)
	}

	logger.FromContext(ctx).Info().
		Str("note_id", noteID).
		Str("type", string(conflictType)).
		Int64("local_version", localVersion).
		Int64("remote_version", remoteVersion).
		Msg("conflict detected")
	return &conflict, nil
}

func (r *conflictResolver) TryAutoResolve(conflict models.Conflict) (models.Resolution, bool) {
	if conflict.LocalNote == nil || conflict.RemoteNote == nil {
		return "", false
	}

	gap := conflict.LocalNote.UpdatedAt.Sub(conflict.RemoteNote.UpdatedAt)
	if gap.Abs() >= r.threshold {
		return "", false
	}

	if conflict.RemoteNote.UpdatedAt.After(conflict.LocalNote.UpdatedAt) {
		return models.ResolutionKeepRemote, true
	}
	return models.ResolutionKeepLocal, true
}

func (r *conflictResolver) Resolve(ctx context.Context, noteID string, resolution models.Resolution) (*models.ResolvedConflict, error) {
	if !resolution.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidResolution, resolution)
	}

	conflict, err := r.store.GetConflict(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("load conflict for %s: %w", noteID, err)
	}
	if conflict == nil {
		return nil, fmt.Errorf("%w: %s", ErrConflictNotFound, noteID)
	}

	resolved := &models.ResolvedConflict{Conflict: *conflict}
	switch resolution {
	case models.ResolutionKeepLocal:
		resolved.Primary = conflict.LocalNote.Clone()
	case models.ResolutionKeepRemote:
		resolved.Primary = conflict.RemoteNote.Clone()
	case models.ResolutionKeepBoth:
		resolved.Primary = conflict.RemoteNote.Clone()
		resolved.Copy = r.conflictCopy(conflict.LocalNote)
	}

	if err = r.store.RemoveConflict(ctx, noteID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*conflictResolver.Resolve").
			Str("note_id", noteID).
			Msg("failed to remove resolved conflict")
		return nil, fmt.Errorf("remove conflict for %s: %w", noteID, err)
	}

	return resolved, nil
}

// conflictCopy duplicates the local side under a new id. Copies made in the
// same second get the same title.
func (r *conflictResolver) conflictCopy(local *models.Note) *models.Note {
	if local == nil {
		return nil
	}

	now := r.now()
	cp := local.Clone()
	cp.ID = r.ids.Generate()
	cp.Title = fmt.Sprintf("%s (conflict copy %s)", local.Title, local.UpdatedAt.Local().Format(conflictCopyTimeLayout))
	cp.CreatedAt = now
	cp.UpdatedAt = now
	cp.Sync = nil

	return cp
}
