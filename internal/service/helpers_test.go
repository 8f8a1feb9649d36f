package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/vault"
	"github.com/MKhiriev/go-note-sync/models"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestStore(t *testing.T) store.SyncStore {
	t.Helper()
	s, err := store.NewSyncStore(testContext(), config.Storage{DSN: filepath.Join(t.TempDir(), "sync.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestVault(t *testing.T) *vault.FileVault {
	t.Helper()
	v, err := vault.NewFileVault(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	return v
}

// plainNote — заметка без sync-метаданных, как её создаёт редактор.
func plainNote(id, body string) *models.Note {
	return &models.Note{
		ID:        id,
		Title:     "title " + id,
		Content:   json.RawMessage(fmt.Sprintf(`{"text":%q}`, body)),
		Tags:      []string{"work"},
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Minute),
	}
}

// versionedNote — заметка с заданной версией и корректным хешем.
func versionedNote(id, body string, version int64, deviceID string) *models.Note {
	n := plainNote(id, body)
	n.Sync = &models.SyncMetadata{Version: version - 1}
	return StampNote(n, deviceID)
}

// stubIDs выдаёт предсказуемые id для копий конфликтов.
type stubIDs struct {
	n atomic.Int64
}

func (s *stubIDs) Generate() string {
	return fmt.Sprintf("copy-%d", s.n.Add(1))
}
