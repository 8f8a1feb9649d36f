// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/vault"
	"github.com/MKhiriev/go-note-sync/models"
)

// ProgressFunc receives migration progress. It is called synchronously from
// MigrateVault.
type ProgressFunc func(models.MigrationProgress)

type vaultMigrator struct {
	vault      vault.Callbacks
	store      store.SyncStore
	tracker    ChangeTracker
	deviceID   string
	onProgress ProgressFunc
}

func NewVaultMigrator(v vault.Callbacks, syncStore store.SyncStore, tracker ChangeTracker, deviceID string, onProgress ProgressFunc) VaultMigrator {
	if onProgress == nil {
		onProgress = func(models.MigrationProgress) {}
	}
	return &vaultMigrator{
		vault:      v,
		store:      syncStore,
		tracker:    tracker,
		deviceID:   deviceID,
		onProgress: onProgress,
	}
}

// NeedsMigration reports whether any note in the vault lacks a sync version.
func (m *vaultMigrator) NeedsMigration(ctx context.Context) (bool, error) {
	ids, err := m.vault.ListNoteIDs(ctx)
	if err != nil {
		return false, fmt.Errorf("list notes: %w", err)
	}

	for _, id := range ids {
		note, err := m.vault.ReadNote(ctx, id)
		if err != nil {
			return false, fmt.Errorf("read note %s: %w", id, err)
		}
		if note != nil && note.Version() == 0 {
			return true, nil
		}
	}
	return false, nil
}

// MigrateVault gives every unversioned note version 1 and queues the vault
// for its first push. Per-note failures are collected in the result; only a
// failure to list the vault is returned as an error.
func (m *vaultMigrator) MigrateVault(ctx context.Context) (models.MigrationResult, error) {
	log := logger.FromContext(ctx)
	var result models.MigrationResult

	m.onProgress(models.MigrationProgress{Phase: models.MigrationPhaseScanning})
	ids, err := m.vault.ListNoteIDs(ctx)
	if err != nil {
		log.Err(err).Str("func", "*vaultMigrator.MigrateVault").Msg("failed to list notes")
		return result, fmt.Errorf("list notes: %w", err)
	}
	result.Total = len(ids)

	for i, id := range ids {
		m.onProgress(models.MigrationProgress{
			Total:       len(ids),
			Completed:   i,
			CurrentNote: id,
			Phase:       models.MigrationPhaseMigrating,
		})

		migrated, err := m.migrateNote(ctx, id)
		switch {
		case err != nil:
			log.Err(err).Str("func", "*vaultMigrator.MigrateVault").Str("note_id", id).Msg("failed to migrate note")
			result.Errors = append(result.Errors, models.MigrationError{NoteID: id, Error: err.Error()})
		case migrated:
			result.Migrated++
		default:
			result.Skipped++
		}
	}

	for i, id := range ids {
		m.onProgress(models.MigrationProgress{
			Total:       len(ids),
			Completed:   i,
			CurrentNote: id,
			Phase:       models.MigrationPhaseQueueing,
		})

		queued, err := m.queueNote(ctx, id)
		if err != nil {
			log.Err(err).Str("func", "*vaultMigrator.MigrateVault").Str("note_id", id).Msg("failed to queue note")
			result.Errors = append(result.Errors, models.MigrationError{NoteID: id, Error: err.Error()})
			continue
		}
		if queued {
			result.Queued++
		}
	}

	m.onProgress(models.MigrationProgress{
		Total:     len(ids),
		Completed: len(ids),
		Phase:     models.MigrationPhaseComplete,
	})
	log.Info().
		Int("total", result.Total).
		Int("migrated", result.Migrated).
		Int("skipped", result.Skipped).
		Int("queued", result.Queued).
		Int("errors", len(result.Errors)).
		Msg("vault migration finished")
	return result, nil
}

func (m *vaultMigrator) migrateNote(ctx context.Context, id string) (bool, error) {
	note, err := m.vault.ReadNote(ctx, id)
	if err != nil {
		return false, err
	}
	if note == nil || note.Version() > 0 {
		return false, nil
	}

	note = note.Clone()
	note.Sync = &models.SyncMetadata{
		Version:     1,
		ContentHash: utils.ContentHash(note),
		DeviceID:    m.deviceID,
	}
	if err = m.vault.SaveNote(ctx, note); err != nil {
		return false, err
	}

	err = m.store.SetSyncState(ctx, models.SyncState{
		NoteID:       id,
		LocalVersion: 1,
		ContentHash:  note.Sync.ContentHash,
		Status:       models.SyncStatusPending,
	})
	return err == nil, err
}

// queueNote queues a create for every versioned note, including notes the
// server already holds. Those come back as an acknowledgement.
func (m *vaultMigrator) queueNote(ctx context.Context, id string) (bool, error) {
	note, err := m.vault.ReadNote(ctx, id)
	if err != nil {
		return false, err
	}
	if note == nil || note.Version() == 0 {
		return false, nil
	}

	if err = m.tracker.QueueChange(ctx, note, models.OperationCreate); err != nil {
		return false, err
	}
	return true, nil
}
