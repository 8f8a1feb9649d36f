package vault

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type recordingHandler struct {
	mu      sync.Mutex
	changed []string
	removed []string
}

func (h *recordingHandler) NoteChanged(_ context.Context, note *models.Note) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.changed = append(h.changed, note.ID+":"+note.Title)
	return nil
}

func (h *recordingHandler) NoteRemoved(_ context.Context, noteID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removed = append(h.removed, noteID)
	return nil
}

func (h *recordingHandler) snapshot() (changed, removed []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.changed...), append([]string(nil), h.removed...)
}

func startWatcher(t *testing.T, v *FileVault, h ChangeHandler) {
	t.Helper()
	w := NewWatcher(v, h, 20*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// give fsnotify a moment to register the directory
	time.Sleep(50 * time.Millisecond)
}

func TestWatcher_ReportsChangesAndRemovals(t *testing.T) {
	v := newTestVault(t)
	h := &recordingHandler{}
	startWatcher(t, v, h)

	note := sampleNote("n1")
	note.Title = "first"
	require.NoError(t, v.SaveNote(context.Background(), note))

	assert.Eventually(t, func() bool {
		changed, _ := h.snapshot()
		return len(changed) > 0 && changed[len(changed)-1] == "n1:first"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(v.Dir(), "n1.json")))

	assert.Eventually(t, func() bool {
		_, removed := h.snapshot()
		return len(removed) == 1 && removed[0] == "n1"
	}, 2*time.Second, 10*time.Millisecond)
}

// Серия быстрых записей схлопывается в одно событие с последним содержимым.
func TestWatcher_DebouncesBursts(t *testing.T) {
	v := newTestVault(t)
	h := &recordingHandler{}

	w := NewWatcher(v, h, 150*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	note := sampleNote("n1")
	for _, title := range []string{"a", "b", "c"} {
		note.Title = title
		require.NoError(t, v.SaveNote(context.Background(), note))
	}

	assert.Eventually(t, func() bool {
		changed, _ := h.snapshot()
		return len(changed) > 0 && changed[len(changed)-1] == "n1:c"
	}, 2*time.Second, 10*time.Millisecond)

	changed, _ := h.snapshot()
	assert.Less(t, len(changed), 3, "bursts must be collapsed")
}

func TestWatcher_IgnoresForeignFiles(t *testing.T) {
	v := newTestVault(t)
	h := &recordingHandler{}
	startWatcher(t, v, h)

	require.NoError(t, os.WriteFile(filepath.Join(v.Dir(), "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(v.Dir(), ".notesync.json"), []byte("{}"), 0o600))

	time.Sleep(150 * time.Millisecond)
	changed, removed := h.snapshot()
	assert.Empty(t, changed)
	assert.Empty(t, removed)
}

func TestWatcher_MissingDir(t *testing.T) {
	v := newTestVault(t)
	require.NoError(t, os.RemoveAll(v.Dir()))

	w := NewWatcher(v, &recordingHandler{}, 0, logger.Nop())
	assert.Error(t, w.Run(context.Background()))
}
