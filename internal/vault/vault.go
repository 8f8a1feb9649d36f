// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault stores note snapshots for the sync engine.
//
// The engine never owns note content: it reads and writes whole notes
// through [Callbacks]. [FileVault] is a directory-backed implementation
// with one JSON document per note, and [Watcher] turns edits made to that
// directory by other programs into engine calls.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=vault.go -destination=../mock/vault_mock.go -package=mock

// Callbacks is the vault surface the sync engine depends on.
type Callbacks interface {
	SaveNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, noteID string) error
	// ReadNote returns nil and no error when the note does not exist.
	ReadNote(ctx context.Context, noteID string) (*models.Note, error)
	ListNoteIDs(ctx context.Context) ([]string, error)
}

const noteExt = ".json"

var (
	ErrInvalidNoteID = errors.New("invalid note id")
	ErrCorruptNote   = errors.New("corrupt note file")
)

// FileVault keeps every note as <dir>/<id>.json.
type FileVault struct {
	dir    string
	logger *logger.Logger
}

func NewFileVault(dir string, logger *logger.Logger) (*FileVault, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating vault dir: %w", err)
	}
	return &FileVault{dir: dir, logger: logger}, nil
}

func (v *FileVault) Dir() string {
	return v.dir
}

// SaveNote writes the note atomically: readers see either the previous or
// the new document, never a partial one.
func (v *FileVault) SaveNote(ctx context.Context, note *models.Note) error {
	if note == nil {
		return fmt.Errorf("%w: nil note", ErrInvalidNoteID)
	}
	path, err := v.path(note.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(note, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding note %s: %w", note.ID, err)
	}

	if err = writeFileAtomic(path, data); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*FileVault.SaveNote").
			Str("note_id", note.ID).
			Msg("failed to write note")
		return err
	}
	return nil
}

// DeleteNote removes the note file. Deleting a missing note is not an error.
func (v *FileVault) DeleteNote(ctx context.Context, noteID string) error {
	path, err := v.path(noteID)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*FileVault.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to delete note")
		return fmt.Errorf("error deleting note %s: %w", noteID, err)
	}
	return nil
}

func (v *FileVault) ReadNote(_ context.Context, noteID string) (*models.Note, error) {
	path, err := v.path(noteID)
	if err != nil {
		return nil, err
	}
	return readNoteFile(path)
}

// ListNoteIDs returns the ids of all notes, sorted.
func (v *FileVault) ListNoteIDs(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(v.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing vault: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if id, ok := noteIDFromName(entry.Name()); ok && entry.Type().IsRegular() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (v *FileVault) path(noteID string) (string, error) {
	if noteID == "" || noteID != filepath.Base(noteID) || strings.HasPrefix(noteID, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidNoteID, noteID)
	}
	return filepath.Join(v.dir, noteID+noteExt), nil
}

// noteIDFromName maps a directory entry to a note id. Hidden files
// (including in-flight temp files) are not notes.
func noteIDFromName(name string) (string, bool) {
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, noteExt) {
		return "", false
	}
	id := strings.TrimSuffix(name, noteExt)
	return id, id != ""
}

func readNoteFile(path string) (*models.Note, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading note: %w", err)
	}

	note := new(models.Note)
	if err = json.Unmarshal(data, note); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptNote, filepath.Base(path), err)
	}
	if note.ID == "" {
		note.ID, _ = noteIDFromName(filepath.Base(path))
	}
	return note, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error renaming temp file: %w", err)
	}
	return nil
}

var _ Callbacks = (*FileVault)(nil)
