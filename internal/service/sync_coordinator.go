// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/network"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/vault"
	"github.com/MKhiriev/go-note-sync/models"
)

// DefaultMaxPullPages bounds the pages fetched by a single pull.
const DefaultMaxPullPages = 100

// CoordinatorDeps are the collaborators of the sync coordinator.
type CoordinatorDeps struct {
	Store     store.SyncStore
	Transport adapter.Transport
	Vault     vault.Callbacks
	Monitor   network.Monitor
	Tracker   ChangeTracker
	Resolver  ConflictResolver
}

// CoordinatorConfig tunes the sync coordinator.
type CoordinatorConfig struct {
	DeviceID     string
	MaxPullPages int
	// AutoResolve applies TryAutoResolve to every newly detected conflict.
	AutoResolve bool
}

type syncCoordinator struct {
	store     store.SyncStore
	transport adapter.Transport
	vault     vault.Callbacks
	monitor   network.Monitor
	tracker   ChangeTracker
	resolver  ConflictResolver

	deviceID     string
	maxPullPages int
	autoResolve  bool
	now          func() time.Time

	mu    sync.Mutex
	phase models.SyncPhase
}

func NewSyncCoordinator(deps CoordinatorDeps, cfg CoordinatorConfig) SyncCoordinator {
	if deps.Monitor == nil {
		deps.Monitor = network.Offline()
	}
	if cfg.MaxPullPages <= 0 {
		cfg.MaxPullPages = DefaultMaxPullPages
	}

	return &syncCoordinator{
		store:        deps.Store,
		transport:    deps.Transport,
		vault:        deps.Vault,
		monitor:      deps.Monitor,
		tracker:      deps.Tracker,
		resolver:     deps.Resolver,
		deviceID:     cfg.DeviceID,
		maxPullPages: cfg.MaxPullPages,
		autoResolve:  cfg.AutoResolve,
		now:          time.Now,
		phase:        models.SyncPhaseIdle,
	}
}

// ── phase guard ──────────────────────────────────────────────────────────────

// begin claims the coordinator for one cycle. It fails if a cycle is
// already in flight.
func (c *syncCoordinator) begin(phase models.SyncPhase) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != models.SyncPhaseIdle {
		return false
	}
	c.phase = phase
	return true
}

func (c *syncCoordinator) setPhase(phase models.SyncPhase) {
	c.mu.Lock()
	c.phase = phase
	c.mu.Unlock()
}

func (c *syncCoordinator) finish() {
	c.setPhase(models.SyncPhaseIdle)
}

func (c *syncCoordinator) Progress() models.SyncProgress {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.SyncProgress{
		Phase:      c.phase,
		InProgress: c.phase != models.SyncPhaseIdle,
	}
}

// ── cycle ────────────────────────────────────────────────────────────────────

func (c *syncCoordinator) RunSyncCycle(ctx context.Context) models.SyncResult {
	if !c.begin(models.SyncPhasePushing) {
		return models.SyncResult{Errors: []string{MsgSyncInProgress}}
	}
	defer c.finish()

	if !c.monitor.IsOnline() {
		return models.SyncResult{Errors: []string{MsgOffline}}
	}

	log := logger.FromContext(ctx)
	started := c.now()

	result := c.push(ctx)

	c.setPhase(models.SyncPhasePulling)
	result.Merge(c.pull(ctx))

	log.Info().
		Int("pushed", result.Pushed).
		Int("pulled", result.Pulled).
		Int("conflicts", result.Conflicts).
		Int("errors", len(result.Errors)).
		Dur("took", c.now().Sub(started)).
		Msg("sync cycle finished")
	return result
}

func (c *syncCoordinator) PushChanges(ctx context.Context) models.SyncResult {
	if !c.begin(models.SyncPhasePushing) {
		return models.SyncResult{Errors: []string{MsgSyncInProgress}}
	}
	defer c.finish()

	return c.push(ctx)
}

func (c *syncCoordinator) PullChanges(ctx context.Context) models.SyncResult {
	if !c.begin(models.SyncPhasePulling) {
		return models.SyncResult{Errors: []string{MsgSyncInProgress}}
	}
	defer c.finish()

	return c.pull(ctx)
}

// ── push ─────────────────────────────────────────────────────────────────────

func (c *syncCoordinator) push(ctx context.Context) models.SyncResult {
	log := logger.FromContext(ctx)
	var result models.SyncResult

	changes, err := c.store.GetQueuedChanges(ctx)
	if err != nil {
		log.Err(err).Str("func", "*syncCoordinator.push").Msg("failed to read queue")
		result.Errors = append(result.Errors, fmt.Sprintf("Push failed: %v", err))
		return result
	}
	if len(changes) == 0 {
		return result
	}

	sent := make(map[string]models.QueuedChange, len(changes))
	req := models.PushRequest{DeviceID: c.deviceID, Changes: make([]models.ChangeItem, 0, len(changes))}
	for _, change := range changes {
		sent[change.NoteID] = change
		req.Changes = append(req.Changes, models.ChangeItem{
			NoteID:    change.NoteID,
			Operation: change.Operation,
			Version:   change.Version,
			Payload:   change.Payload,
		})
	}

	resp, err := c.transport.Push(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*syncCoordinator.push").Int("changes", len(changes)).Msg("push request failed")
		result.Errors = append(result.Errors, fmt.Sprintf("Push failed: %v", err))
		return result
	}

	now := c.now()
	for _, ack := range resp.Accepted {
		change, ok := sent[ack.NoteID]
		if !ok {
			log.Warn().Str("note_id", ack.NoteID).Msg("server acknowledged a note that was not pushed")
			continue
		}
		if err = c.store.AcknowledgeChange(ctx, ack.NoteID, change.Version, ack.ServerVersion, now); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to record push of note %s: %v", ack.NoteID, err))
			continue
		}
		if change.Operation != models.OperationDelete {
			c.markNoteSynced(ctx, ack.NoteID, change.Version, ack.ServerVersion, now)
		}
		result.Pushed++
	}

	for _, pc := range resp.Conflicts {
		change, ok := sent[pc.NoteID]
		if !ok {
			continue
		}
		c.handlePushConflict(ctx, change, pc, &result)
	}

	for _, pe := range resp.Errors {
		change, ok := sent[pe.NoteID]
		if !ok {
			continue
		}
		if err = c.store.RecordPushFailure(ctx, pe.NoteID, change.Version, pe.Error, pe.Retryable); err != nil {
			log.Err(err).Str("func", "*syncCoordinator.push").Str("note_id", pe.NoteID).Msg("failed to record push failure")
		}
		if !pe.Retryable {
			log.Warn().Str("note_id", pe.NoteID).Str("reason", pe.Error).Msg("change rejected permanently, moved to dead letters")
		}
		result.Errors = append(result.Errors, fmt.Sprintf("Push failed for note %s: %s", pe.NoteID, pe.Error))
	}

	return result
}

func (c *syncCoordinator) handlePushConflict(ctx context.Context, change models.QueuedChange, pc models.PushConflict, result *models.SyncResult) {
	log := logger.FromContext(ctx)

	var local *models.Note
	if change.Operation != models.OperationDelete {
		var err error
		if local, err = c.vault.ReadNote(ctx, change.NoteID); err != nil {
			log.Err(err).Str("func", "*syncCoordinator.handlePushConflict").Str("note_id", change.NoteID).Msg("failed to read local note")
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to read note %s: %v", change.NoteID, err))
			return
		}
		if local == nil {
			local = change.Payload
		}
	}

	server := withNoteID(pc.ServerNote, change.NoteID)

	conflictType := models.ConflictTypeEdit
	switch {
	case change.Operation == models.OperationDelete:
		conflictType = models.ConflictTypeDeleteEdit
	case server == nil:
		conflictType = models.ConflictTypeEditDelete
	}

	localVersion := change.Version
	if localVersion >= pc.ServerVersion {
		// rejected without being behind: both sides reached the same version
		// independently, so compare against the last version this device
		// saw from the server
		localVersion = c.baseVersion(ctx, change.NoteID)
	}

	conflict, err := c.resolver.DetectConflict(ctx, local, server, localVersion, pc.ServerVersion, conflictType)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to record conflict for note %s: %v", change.NoteID, err))
		return
	}
	if conflict == nil {
		if utils.ContentHash(local) != utils.ContentHash(server) {
			c.republish(ctx, change, local, server, pc.ServerVersion, result)
			return
		}

		// same content already on the server
		now := c.now()
		if err = c.store.AcknowledgeChange(ctx, change.NoteID, change.Version, pc.ServerVersion, now); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to record push of note %s: %v", change.NoteID, err))
			return
		}
		if change.Operation != models.OperationDelete {
			c.markNoteSynced(ctx, change.NoteID, change.Version, pc.ServerVersion, now)
		}
		return
	}

	c.afterConflict(ctx, *conflict, result)
}

// republish queues the local side again one version above the server head.
// The change was built on that head but never got a newer version, so the
// server refused it without the two sides having diverged.
func (c *syncCoordinator) republish(ctx context.Context, change models.QueuedChange, local, server *models.Note, serverVersion int64,
	result *models.SyncResult) {
	log := logger.FromContext(ctx)

	_, err := c.keepLocal(ctx, models.Conflict{
		NoteID:        change.NoteID,
		LocalNote:     local,
		RemoteNote:    server,
		LocalVersion:  change.Version,
		RemoteVersion: serverVersion,
	})
	if err != nil {
		log.Err(err).Str("func", "*syncCoordinator.republish").Str("note_id", change.NoteID).Msg("failed to requeue change")
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to requeue note %s: %v", change.NoteID, err))
		return
	}

	log.Info().
		Str("note_id", change.NoteID).
		Int64("pushed_version", change.Version).
		Int64("server_version", serverVersion).
		Msg("change requeued above the server version")
}

// baseVersion is the server version the local edits of noteID started from.
func (c *syncCoordinator) baseVersion(ctx context.Context, noteID string) int64 {
	state, err := c.store.GetSyncState(ctx, noteID)
	if err != nil || state == nil || state.ServerVersion == nil {
		return 0
	}
	return *state.ServerVersion
}

func (c *syncCoordinator) afterConflict(ctx context.Context, conflict models.Conflict, result *models.SyncResult) {
	if c.autoResolve {
		if resolution, ok := c.resolver.TryAutoResolve(conflict); ok {
			_, err := c.applyResolution(ctx, conflict.NoteID, resolution)
			if err == nil {
				logger.FromContext(ctx).Info().
					Str("note_id", conflict.NoteID).
					Str("resolution", string(resolution)).
					Msg("conflict auto-resolved")
				return
			}
			logger.FromContext(ctx).Err(err).Str("note_id", conflict.NoteID).Msg("auto-resolution failed")
		}
	}

	result.Conflicts++
	result.Errors = append(result.Errors, ConflictMessage(conflict.NoteID))
}

// markNoteSynced adopts the server version in the vault copy of the note,
// unless the note was edited again since the push.
func (c *syncCoordinator) markNoteSynced(ctx context.Context, noteID string, pushedVersion, serverVersion int64, at time.Time) {
	log := logger.FromContext(ctx)

	note, err := c.vault.ReadNote(ctx, noteID)
	if err != nil || note == nil || note.Sync == nil || note.Sync.Version != pushedVersion {
		if err != nil {
			log.Err(err).Str("func", "*syncCoordinator.markNoteSynced").Str("note_id", noteID).Msg("failed to read pushed note")
		}
		return
	}

	sv, syncedAt := serverVersion, at
	note.Sync.Version = serverVersion
	note.Sync.ServerVersion = &sv
	note.Sync.SyncedAt = &syncedAt
	if err = c.vault.SaveNote(ctx, note); err != nil {
		log.Err(err).Str("func", "*syncCoordinator.markNoteSynced").Str("note_id", noteID).Msg("failed to save sync metadata")
	}
}

// ── pull ─────────────────────────────────────────────────────────────────────

func (c *syncCoordinator) pull(ctx context.Context) models.SyncResult {
	log := logger.FromContext(ctx)
	var result models.SyncResult

	for page := 0; page < c.maxPullPages; page++ {
		since, err := c.store.GetSyncSequence(ctx)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Pull failed: %v", err))
			return result
		}

		resp, err := c.transport.Pull(ctx, models.PullRequest{DeviceID: c.deviceID, SinceSequence: since})
		if err != nil {
			log.Err(err).Str("func", "*syncCoordinator.pull").Int64("since_sequence", since).Msg("pull request failed")
			result.Errors = append(result.Errors, fmt.Sprintf("Pull failed: %v", err))
			return result
		}

		for _, change := range resp.Changes {
			if err = c.applyRemoteChange(ctx, change, &result); err != nil {
				// the page is re-fetched next cycle; applying is idempotent
				log.Err(err).Str("func", "*syncCoordinator.pull").Str("note_id", change.NoteID).Msg("failed to apply remote change")
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to apply change for note %s: %v", change.NoteID, err))
				return result
			}
		}

		if err = c.store.SetSyncSequence(ctx, resp.LatestSequence); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to save sync sequence: %v", err))
			return result
		}

		if !resp.HasMore || resp.LatestSequence <= since {
			break
		}
	}

	return result
}

// applyRemoteChange returns an error only for failures that must stop the
// pull before the cursor moves.
func (c *syncCoordinator) applyRemoteChange(ctx context.Context, change models.RemoteChange, result *models.SyncResult) error {
	state, err := c.store.GetSyncState(ctx, change.NoteID)
	if err != nil {
		return err
	}

	if state.IsPending() {
		return c.classifyPulledChange(ctx, change, state, result)
	}

	if state != nil && state.ServerVersion != nil && change.Version <= *state.ServerVersion {
		return nil
	}

	switch change.Operation {
	case models.OperationDelete:
		if err = c.vault.DeleteNote(ctx, change.NoteID); err != nil {
			return err
		}
		if err = c.store.DeleteSyncState(ctx, change.NoteID); err != nil {
			return err
		}
	case models.OperationCreate, models.OperationUpdate:
		if change.Note == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Remote change for note %s has no content", change.NoteID))
			return nil
		}
		note := change.Note.Clone()
		note.ID = change.NoteID
		if err = c.saveSynced(ctx, note, change.Version); err != nil {
			return err
		}
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("Unknown operation %q for note %s", change.Operation, change.NoteID))
		return nil
	}

	result.Pulled++
	return nil
}

// classifyPulledChange never applies the remote change: the local edit is
// unsynced and must not be overwritten.
func (c *syncCoordinator) classifyPulledChange(ctx context.Context, change models.RemoteChange, state *models.SyncState, result *models.SyncResult) error {
	queued, err := c.store.GetQueuedChange(ctx, change.NoteID)
	if err != nil {
		return err
	}
	localDeleted := queued != nil && queued.Operation == models.OperationDelete

	var local *models.Note
	if !localDeleted {
		if local, err = c.vault.ReadNote(ctx, change.NoteID); err != nil {
			return err
		}
		localDeleted = local == nil
	}

	conflictType := models.ConflictTypeEdit
	switch {
	case localDeleted:
		conflictType = models.ConflictTypeDeleteEdit
	case change.Operation == models.OperationDelete:
		conflictType = models.ConflictTypeEditDelete
	}

	var remote *models.Note
	if change.Operation != models.OperationDelete {
		remote = withNoteID(change.Note, change.NoteID)
	}

	conflict, err := c.resolver.DetectConflict(ctx, local, remote, state.LocalVersion, change.Version, conflictType)
	if err != nil {
		return err
	}
	if conflict != nil {
		c.afterConflict(ctx, *conflict, result)
	}
	return nil
}

// saveSynced writes a server-confirmed note to the vault and marks it synced.
func (c *syncCoordinator) saveSynced(ctx context.Context, note *models.Note, serverVersion int64) error {
	now := c.now()
	sv := serverVersion

	deviceID := ""
	if note.Sync != nil {
		deviceID = note.Sync.DeviceID
	}
	note.Sync = &models.SyncMetadata{
		Version:       serverVersion,
		ContentHash:   utils.ContentHash(note),
		ServerVersion: &sv,
		SyncedAt:      &now,
		DeviceID:      deviceID,
	}

	if err := c.vault.SaveNote(ctx, note); err != nil {
		return err
	}

	return c.store.SetSyncState(ctx, models.SyncState{
		NoteID:        note.ID,
		LocalVersion:  serverVersion,
		ServerVersion: &sv,
		ContentHash:   note.Sync.ContentHash,
		LastSyncedAt:  &now,
		Status:        models.SyncStatusSynced,
	})
}
