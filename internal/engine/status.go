package engine

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// GetStatus derives the single sync state with the precedence
// disabled > offline > conflict > error > syncing > idle.
func (e *Engine) GetStatus(ctx context.Context) models.EngineStatus {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	initialized, st := e.initialized, e.store
	status := models.EngineStatus{Error: e.lastError}
	if e.lastSyncAt != nil {
		at := *e.lastSyncAt
		status.LastSyncAt = &at
	}
	syncing := e.running > 0
	if initialized {
		syncing = syncing || e.coordinator.Progress().InProgress
	}
	e.mu.Unlock()

	if initialized {
		var err error
		if status.PendingChanges, err = st.GetQueueSize(ctx); err != nil {
			log.Err(err).Str("func", "*Engine.GetStatus").Msg("failed to count pending changes")
		}
		if status.ConflictCount, err = st.GetConflictCount(ctx); err != nil {
			log.Err(err).Str("func", "*Engine.GetStatus").Msg("failed to count conflicts")
		}
		if dead, err := st.GetDeadLetters(ctx); err != nil {
			log.Err(err).Str("func", "*Engine.GetStatus").Msg("failed to list failed changes")
		} else {
			status.FailedChanges = len(dead)
		}
	}

	switch {
	case !e.opts.Enabled:
		status.State = models.EngineStateDisabled
	case !e.deps.Monitor.IsOnline():
		status.State = models.EngineStateOffline
	case status.ConflictCount > 0:
		status.State = models.EngineStateConflict
	case status.Error != "":
		status.State = models.EngineStateError
	case syncing:
		status.State = models.EngineStateSyncing
	default:
		status.State = models.EngineStateIdle
	}
	return status
}

// OnStatusChange registers cb, calls it right away with the current status
// and returns a function that removes it. Callbacks run synchronously in
// the goroutine that changed the state.
func (e *Engine) OnStatusChange(ctx context.Context, cb func(models.EngineStatus)) (unsubscribe func()) {
	e.subsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = cb
	e.subsMu.Unlock()

	cb(e.GetStatus(ctx))

	var once sync.Once
	return func() {
		once.Do(func() {
			e.subsMu.Lock()
			delete(e.subs, id)
			e.subsMu.Unlock()
		})
	}
}

func (e *Engine) notify(ctx context.Context) {
	e.subsMu.Lock()
	if len(e.subs) == 0 {
		e.subsMu.Unlock()
		return
	}
	subs := make([]func(models.EngineStatus), 0, len(e.subs))
	for _, cb := range e.subs {
		subs = append(subs, cb)
	}
	e.subsMu.Unlock()

	status := e.GetStatus(ctx)
	for _, cb := range subs {
		cb(status)
	}
}
