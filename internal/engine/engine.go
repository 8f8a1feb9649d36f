// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine is the single entry point of the sync core. It owns the
// sync store for its lifetime, wires the change tracker, conflict resolver
// and coordinator together, follows network transitions and derives the one
// user-visible sync state.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/network"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type Engine struct {
	deps   Deps
	opts   Options
	logger *logger.Logger
	now    func() time.Time

	mu          sync.Mutex
	initialized bool
	store       store.SyncStore
	deviceID    string
	tracker     service.ChangeTracker
	coordinator service.SyncCoordinator
	job         service.SyncJob
	runCtx      context.Context
	cancelRun   context.CancelFunc
	unsubscribe func()
	lastSyncAt  *time.Time
	lastError   string
	running     int

	// netMu serializes network transitions with Shutdown.
	netMu  sync.Mutex
	cycles sync.WaitGroup

	subsMu  sync.Mutex
	subs    map[int]func(models.EngineStatus)
	nextSub int
}

func New(deps Deps, opts Options) *Engine {
	if deps.Monitor == nil {
		deps.Monitor = network.Offline()
	}
	if deps.IDs == nil {
		deps.IDs = utils.NewUUIDGenerator()
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	return &Engine{
		deps:   deps,
		opts:   opts,
		logger: deps.Logger,
		now:    time.Now,
		subs:   make(map[int]func(models.EngineStatus)),
	}
}

// Initialize opens the store, loads or creates the device id and starts
// following the network. Calling it on an initialized engine is a no-op.
func (e *Engine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	if e.initialized {
		e.mu.Unlock()
		return nil
	}

	if err := e.open(ctx); err != nil {
		e.mu.Unlock()
		return err
	}
	e.initialized = true
	e.mu.Unlock()

	if e.opts.Enabled && !e.opts.Manual {
		e.netMu.Lock()
		unsubscribe := e.deps.Monitor.Subscribe(e.onNetworkChange)
		e.mu.Lock()
		e.unsubscribe = unsubscribe
		e.mu.Unlock()
		if e.deps.Monitor.IsOnline() {
			e.job.Start(e.runCtx, e.opts.SyncInterval)
		}
		e.netMu.Unlock()
	}

	e.logger.Info().
		Str("device_id", e.deviceID).
		Bool("enabled", e.opts.Enabled).
		Bool("online", e.deps.Monitor.IsOnline()).
		Msg("sync engine initialized")
	e.notify(ctx)
	return nil
}

// open builds every component. e.mu must be held.
func (e *Engine) open(ctx context.Context) error {
	st, err := e.deps.OpenStore(ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "*Engine.Initialize").Msg("failed to open sync store")
		return fmt.Errorf("open sync store: %w", err)
	}

	deviceID, err := e.loadDeviceID(ctx, st)
	if err != nil {
		st.Close()
		return err
	}
	if err = st.SetSyncSequence(ctx, e.opts.LastSyncSequence); err != nil {
		st.Close()
		return fmt.Errorf("seed sync sequence: %w", err)
	}

	tracker := service.NewChangeTracker(st)
	resolver := service.NewConflictResolver(st, e.deps.IDs)
	coordinator := service.NewSyncCoordinator(service.CoordinatorDeps{
		Store:     st,
		Transport: e.deps.Transport,
		Vault:     e.deps.Vault,
		Monitor:   e.deps.Monitor,
		Tracker:   tracker,
		Resolver:  resolver,
	}, service.CoordinatorConfig{
		DeviceID:     deviceID,
		MaxPullPages: e.opts.MaxPullPages,
		AutoResolve:  e.opts.AutoResolve,
	})

	e.store = st
	e.deviceID = deviceID
	e.tracker = tracker
	e.coordinator = coordinator
	e.job = service.NewSyncJob(cycleRunnerFunc(e.runCycle), e.deps.Monitor)
	e.runCtx, e.cancelRun = context.WithCancel(e.logger.WithContext(context.WithoutCancel(ctx)))
	e.lastError = ""
	return nil
}

func (e *Engine) loadDeviceID(ctx context.Context, st store.SyncStore) (string, error) {
	id, err := st.GetDeviceID(ctx)
	if err != nil {
		return "", fmt.Errorf("load device id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	id = e.opts.DeviceID
	if id == "" {
		id = e.deps.IDs.Generate()
	}
	if id, err = st.SetDeviceID(ctx, id); err != nil {
		return "", fmt.Errorf("save device id: %w", err)
	}
	return id, nil
}

// Shutdown stops background syncing, waits for an in-flight cycle and closes
// the store. When ctx ends first the cycle is cancelled and left to unwind
// on its own. Calling it on a stopped engine is a no-op.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.netMu.Lock()
	defer e.netMu.Unlock()

	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return nil
	}
	e.initialized = false
	unsubscribe, job, st, cancel := e.unsubscribe, e.job, e.store, e.cancelRun
	e.unsubscribe = nil
	e.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	job.Stop()
	if !e.waitCycles(ctx) {
		logger.FromContext(ctx).Warn().Str("func", "*Engine.Shutdown").Msg("abandoning in-flight sync cycle")
	}
	cancel()

	if err := st.Close(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Engine.Shutdown").Msg("failed to close sync store")
		return fmt.Errorf("close sync store: %w", err)
	}
	e.logger.Info().Msg("sync engine stopped")
	return nil
}

// waitCycles reports whether running cycles finished before ctx ended.
func (e *Engine) waitCycles(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		e.cycles.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

func (e *Engine) onNetworkChange(online bool) {
	e.netMu.Lock()
	e.mu.Lock()
	initialized, job, ctx := e.initialized, e.job, e.runCtx
	e.mu.Unlock()

	if initialized {
		if online {
			e.logger.Info().Msg("network online, starting periodic sync")
			job.Start(ctx, e.opts.SyncInterval)
		} else {
			// an in-flight cycle finishes on its own
			e.logger.Info().Msg("network offline, stopping periodic sync")
			job.Stop()
		}
	}
	e.netMu.Unlock()

	if initialized {
		e.notify(ctx)
	}
}

// components returns the live components or ErrNotInitialized.
func (e *Engine) components() (store.SyncStore, service.ChangeTracker, service.SyncCoordinator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return nil, nil, nil, ErrNotInitialized
	}
	return e.store, e.tracker, e.coordinator, nil
}

// ── sync ─────────────────────────────────────────────────────────────────────

// TriggerSync runs one cycle right away. Failures are reported in the result.
func (e *Engine) TriggerSync(ctx context.Context) models.SyncResult {
	if !e.opts.Enabled {
		return models.SyncResult{Errors: []string{MsgSyncDisabled}}
	}
	return e.runCycle(ctx)
}

type cycleRunnerFunc func(ctx context.Context) models.SyncResult

func (f cycleRunnerFunc) RunSyncCycle(ctx context.Context) models.SyncResult {
	return f(ctx)
}

func (e *Engine) runCycle(ctx context.Context) models.SyncResult {
	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return models.SyncResult{Errors: []string{MsgNotInitialized}}
	}
	coordinator, runCtx := e.coordinator, e.runCtx
	e.cycles.Add(1)
	e.running++
	e.mu.Unlock()
	defer e.cycles.Done()

	// Shutdown abandons the cycle by cancelling runCtx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer context.AfterFunc(runCtx, cancel)()

	e.notify(ctx)
	result := coordinator.RunSyncCycle(ctx)

	e.mu.Lock()
	e.running--
	e.mu.Unlock()

	e.record(result)
	e.notify(ctx)
	return result
}

// record keeps the outcome of a completed cycle for GetStatus.
func (e *Engine) record(result models.SyncResult) {
	if len(result.Errors) == 1 {
		switch result.Errors[0] {
		case service.MsgOffline, service.MsgSyncInProgress:
			return
		}
	}

	now := e.now()
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastSyncAt = &now
	e.lastError = ""
	for _, msg := range result.Errors {
		if msg == service.MsgOffline || msg == service.MsgSyncInProgress || strings.HasPrefix(msg, service.ConflictMessage("")) {
			continue
		}
		e.lastError = msg
		break
	}
}

func (e *Engine) Progress() models.SyncProgress {
	_, _, coordinator, err := e.components()
	if err != nil {
		return models.SyncProgress{Phase: models.SyncPhaseIdle}
	}
	return coordinator.Progress()
}

// ── local changes ────────────────────────────────────────────────────────────

// AddSyncMetadata returns a copy of note stamped with the next version, a
// fresh content hash and this device's id.
func (e *Engine) AddSyncMetadata(note *models.Note) *models.Note {
	e.mu.Lock()
	deviceID := e.deviceID
	e.mu.Unlock()

	return service.StampNote(note, deviceID)
}

// QueueChange queues note for the next push. A note without sync metadata,
// or whose content no longer matches its recorded hash, is stamped first.
func (e *Engine) QueueChange(ctx context.Context, note *models.Note, op models.Operation) error {
	_, tracker, _, err := e.components()
	if err != nil {
		return err
	}

	if note != nil && (note.Sync == nil || note.Sync.ContentHash != utils.ContentHash(note)) {
		note = e.AddSyncMetadata(note)
	}
	if err = tracker.QueueChange(ctx, note, op); err != nil {
		return err
	}

	e.notify(ctx)
	return nil
}

// QueueDelete queues the deletion of noteID one version above the local one.
func (e *Engine) QueueDelete(ctx context.Context, noteID string) error {
	st, tracker, _, err := e.components()
	if err != nil {
		return err
	}

	var version int64
	state, err := st.GetSyncState(ctx, noteID)
	if err != nil {
		return fmt.Errorf("load sync state of %s: %w", noteID, err)
	}
	if state != nil {
		version = state.LocalVersion
	}

	if err = tracker.QueueDelete(ctx, noteID, version+1); err != nil {
		return err
	}

	e.notify(ctx)
	return nil
}

// ── conflicts & failures ─────────────────────────────────────────────────────

func (e *Engine) GetConflicts(ctx context.Context) ([]models.Conflict, error) {
	st, _, _, err := e.components()
	if err != nil {
		return nil, err
	}
	return st.GetAllConflicts(ctx)
}

func (e *Engine) ResolveConflict(ctx context.Context, noteID string, resolution models.Resolution) (*models.ResolvedConflict, error) {
	_, _, coordinator, err := e.components()
	if err != nil {
		return nil, err
	}

	resolved, err := coordinator.ApplyResolution(ctx, noteID, resolution)
	if err != nil {
		return nil, err
	}

	e.notify(ctx)
	return resolved, nil
}

// GetFailedChanges returns the dead-lettered changes the server rejected
// permanently.
func (e *Engine) GetFailedChanges(ctx context.Context) ([]models.QueuedChange, error) {
	st, _, _, err := e.components()
	if err != nil {
		return nil, err
	}
	return st.GetDeadLetters(ctx)
}

func (e *Engine) GetDeviceID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.deviceID
}

// SyncSequence returns the pull cursor.
func (e *Engine) SyncSequence(ctx context.Context) (int64, error) {
	st, _, _, err := e.components()
	if err != nil {
		return 0, err
	}
	return st.GetSyncSequence(ctx)
}

// ── migration ────────────────────────────────────────────────────────────────

func (e *Engine) migrator(onProgress service.ProgressFunc) (service.VaultMigrator, error) {
	st, tracker, _, err := e.components()
	if err != nil {
		return nil, err
	}
	return service.NewVaultMigrator(e.deps.Vault, st, tracker, e.GetDeviceID(), onProgress), nil
}

func (e *Engine) NeedsMigration(ctx context.Context) (bool, error) {
	m, err := e.migrator(nil)
	if err != nil {
		return false, err
	}
	return m.NeedsMigration(ctx)
}

func (e *Engine) MigrateVault(ctx context.Context, onProgress service.ProgressFunc) (models.MigrationResult, error) {
	m, err := e.migrator(onProgress)
	if err != nil {
		return models.MigrationResult{}, err
	}

	result, err := m.MigrateVault(ctx)
	e.notify(ctx)
	return result, err
}
