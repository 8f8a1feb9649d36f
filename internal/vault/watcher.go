// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// DefaultDebounce collapses the burst of events editors produce for a
// single save.
const DefaultDebounce = 200 * time.Millisecond

// ChangeHandler receives settled vault events.
type ChangeHandler interface {
	// NoteChanged is called with the current snapshot of a created or
	// modified note file.
	NoteChanged(ctx context.Context, note *models.Note) error
	// NoteRemoved is called when a note file disappears.
	NoteRemoved(ctx context.Context, noteID string) error
}

type pendingEvent struct {
	timer *time.Timer
}

// Watcher observes a [FileVault] directory with fsnotify.
type Watcher struct {
	vault    *FileVault
	handler  ChangeHandler
	debounce time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	pending map[string]*pendingEvent
	wg      sync.WaitGroup
}

func NewWatcher(vault *FileVault, handler ChangeHandler, debounce time.Duration, logger *logger.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		vault:    vault,
		handler:  handler,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[string]*pendingEvent),
	}
}

// Run watches the vault until ctx is done. Pending debounced events are
// dropped on exit.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating fs watcher: %w", err)
	}
	defer fsw.Close()

	if err = fsw.Add(w.vault.Dir()); err != nil {
		return fmt.Errorf("error watching vault dir: %w", err)
	}
	w.logger.Info().Str("func", "*Watcher.Run").Str("dir", w.vault.Dir()).Msg("watching vault")

	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.onEvent(ctx, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn().Str("func", "*Watcher.Run").Msg("fs event overflow, some edits may need a manual rescan")
				continue
			}
			w.logger.Err(err).Str("func", "*Watcher.Run").Msg("fs watcher error")
		}
	}
}

func (w *Watcher) onEvent(ctx context.Context, event fsnotify.Event) {
	id, ok := noteIDFromName(filepath.Base(event.Name))
	if !ok {
		return
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if p, exists := w.pending[id]; exists && p.timer.Stop() {
		p.timer.Reset(w.debounce)
		return
	}

	p := new(pendingEvent)
	w.wg.Add(1)
	p.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()

		w.mu.Lock()
		if w.pending[id] == p {
			delete(w.pending, id)
		}
		w.mu.Unlock()

		w.settle(ctx, id)
	})
	w.pending[id] = p
}

// settle looks at the file as it is now, not at the event that woke us up.
func (w *Watcher) settle(ctx context.Context, id string) {
	if ctx.Err() != nil {
		return
	}
	log := w.logger

	note, err := w.vault.ReadNote(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Watcher.settle").Str("note_id", id).Msg("failed to read changed note")
		return
	}

	if note == nil {
		err = w.handler.NoteRemoved(ctx, id)
	} else {
		err = w.handler.NoteChanged(ctx, note)
	}
	if err != nil {
		log.Err(err).Str("func", "*Watcher.settle").Str("note_id", id).Msg("failed to handle vault change")
	}
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	for id, p := range w.pending {
		if p.timer.Stop() {
			w.wg.Done()
		}
		delete(w.pending, id)
	}
	w.mu.Unlock()

	w.wg.Wait()
}
