// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=change_log.go -destination=../mock/change_log_mock.go -package=mock

// ChangeLog is the server-side, append-only record of accepted changes.
//
// Every appended entry receives the next value of a single global sequence,
// starting at 1. Heads track the latest accepted version of each note.
type ChangeLog interface {
	// Head returns the latest accepted state of the note, or nil if the
	// server has never seen it.
	Head(ctx context.Context, noteID string) (*models.NoteHead, error)
	// Append stores the change, assigns it the next sequence and returns
	// the stored copy.
	Append(ctx context.Context, deviceID string, change models.RemoteChange) (models.RemoteChange, error)
	// Entries returns at most limit entries with a sequence greater than
	// since, in sequence order. A non-positive limit means no limit.
	Entries(ctx context.Context, since int64, limit int) ([]models.LogEntry, error)
	// LatestSequence returns the sequence of the newest entry (0 if empty).
	LatestSequence(ctx context.Context) (int64, error)
}

type memoryChangeLog struct {
	mu       sync.RWMutex
	entries  []models.LogEntry
	heads    map[string]models.NoteHead
	sequence int64

	logger *logger.Logger
}

// NewMemoryChangeLog returns an empty in-memory [ChangeLog]. Its content
// lives only as long as the process.
func NewMemoryChangeLog(logger *logger.Logger) ChangeLog {
	return &memoryChangeLog{
		heads:  make(map[string]models.NoteHead),
		logger: logger,
	}
}

func (m *memoryChangeLog) Head(ctx context.Context, noteID string) (*models.NoteHead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	head, ok := m.heads[noteID]
	if !ok {
		return nil, nil
	}
	head.Note = head.Note.Clone()
	return &head, nil
}

func (m *memoryChangeLog) Append(ctx context.Context, deviceID string, change models.RemoteChange) (models.RemoteChange, error) {
	if err := ctx.Err(); err != nil {
		return models.RemoteChange{}, err
	}
	if change.NoteID == "" || !change.Operation.Valid() {
		return models.RemoteChange{}, ErrInvalidChange
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sequence++
	change.ServerSequence = m.sequence
	change.Note = change.Note.Clone()
	if change.Operation == models.OperationDelete {
		change.Note = nil
	}

	m.entries = append(m.entries, models.LogEntry{DeviceID: deviceID, Change: change})
	m.heads[change.NoteID] = models.NoteHead{
		NoteID:   change.NoteID,
		Version:  change.Version,
		Sequence: change.ServerSequence,
		Deleted:  change.Operation == models.OperationDelete,
		Note:     change.Note,
	}

	m.logger.Debug().Str("func", "*memoryChangeLog.Append").
		Str("note_id", change.NoteID).
		Str("device_id", deviceID).
		Int64("sequence", change.ServerSequence).
		Msg("change appended")

	stored := change
	stored.Note = change.Note.Clone()
	return stored, nil
}

func (m *memoryChangeLog) Entries(ctx context.Context, since int64, limit int) ([]models.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	// sequences are dense and start at 1, but search anyway
	start := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Change.ServerSequence > since
	})
	end := len(m.entries)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	page := slices.Clone(m.entries[start:end])
	for i := range page {
		page[i].Change.Note = page[i].Change.Note.Clone()
	}
	return page, nil
}

func (m *memoryChangeLog) LatestSequence(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sequence, nil
}
