// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/network"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/vault"
	"github.com/MKhiriev/go-note-sync/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

type testEngine struct {
	*Engine
	ctx       context.Context
	dsn       string
	vault     *vault.FileVault
	transport *mock.MockTransport
	monitor   *network.Manual
}

func newTestEngine(t *testing.T, online bool, opts Options) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)

	dsn := filepath.Join(t.TempDir(), "sync.db")
	v, err := vault.NewFileVault(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	te := &testEngine{
		ctx:       testContext(),
		dsn:       dsn,
		vault:     v,
		transport: mock.NewMockTransport(ctrl),
		monitor:   network.NewManual(online),
	}
	te.Engine = New(Deps{
		OpenStore: SQLiteStore(config.Storage{DSN: dsn}, logger.Nop()),
		Transport: te.transport,
		Vault:     v,
		Monitor:   te.monitor,
		Logger:    logger.Nop(),
	}, opts)
	t.Cleanup(func() { te.Shutdown(te.ctx) })
	return te
}

func enabled() Options {
	return Options{Enabled: true, SyncInterval: time.Hour}
}

func note(id, body string) *models.Note {
	return &models.Note{
		ID:        id,
		Title:     "title " + id,
		Content:   json.RawMessage(`{"text":"` + body + `"}`),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func acceptAll(_ context.Context, req models.PushRequest) (models.PushResponse, error) {
	var resp models.PushResponse
	for _, change := range req.Changes {
		resp.Accepted = append(resp.Accepted, models.PushAccepted{NoteID: change.NoteID, ServerVersion: change.Version})
	}
	return resp, nil
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestEngine_Initialize_Idempotent(t *testing.T) {
	te := newTestEngine(t, false, enabled())

	require.NoError(t, te.Initialize(te.ctx))
	id := te.GetDeviceID()
	assert.NotEmpty(t, id)

	require.NoError(t, te.Initialize(te.ctx))
	assert.Equal(t, id, te.GetDeviceID())
}

func TestEngine_DeviceID_PersistsAcrossRestarts(t *testing.T) {
	opts := enabled()
	opts.DeviceID = "device-from-config"
	te := newTestEngine(t, false, opts)

	require.NoError(t, te.Initialize(te.ctx))
	assert.Equal(t, "device-from-config", te.GetDeviceID())
	require.NoError(t, te.Shutdown(te.ctx))

	// новый движок на той же базе получает тот же id
	other := New(Deps{
		OpenStore: SQLiteStore(config.Storage{DSN: te.dsn}, logger.Nop()),
		Vault:     te.vault,
	}, Options{Enabled: true, DeviceID: "another"})
	require.NoError(t, other.Initialize(te.ctx))
	defer other.Shutdown(te.ctx)
	assert.Equal(t, "device-from-config", other.GetDeviceID())
}

func TestEngine_Shutdown_Idempotent(t *testing.T) {
	te := newTestEngine(t, true, enabled())

	// Shutdown до Initialize — ничего не делает
	require.NoError(t, te.Shutdown(te.ctx))

	te.transport.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil).AnyTimes()
	require.NoError(t, te.Initialize(te.ctx))
	require.NoError(t, te.Shutdown(te.ctx))
	require.NoError(t, te.Shutdown(te.ctx))

	assert.Equal(t, []string{MsgNotInitialized}, te.TriggerSync(te.ctx).Errors)
	assert.ErrorIs(t, te.QueueChange(te.ctx, note("n1", "a"), models.OperationCreate), ErrNotInitialized)
}

func TestEngine_Shutdown_AbandonsHungCycle(t *testing.T) {
	opts := enabled()
	opts.Manual = true
	te := newTestEngine(t, true, opts)
	require.NoError(t, te.Initialize(te.ctx))
	require.NoError(t, te.QueueChange(te.ctx, note("n1", "a"), models.OperationCreate))

	// сервер не отвечает, пока запрос не отменят
	started := make(chan struct{})
	te.transport.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.PushRequest) (models.PushResponse, error) {
			close(started)
			<-ctx.Done()
			return models.PushResponse{}, ctx.Err()
		})
	te.transport.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, context.Canceled).AnyTimes()

	results := make(chan models.SyncResult, 1)
	go func() { results <- te.TriggerSync(te.ctx) }()
	<-started

	ctx, cancel := context.WithTimeout(te.ctx, 50*time.Millisecond)
	defer cancel()
	require.NoError(t, te.Shutdown(ctx))

	select {
	case result := <-results:
		assert.NotEmpty(t, result.Errors)
	case <-time.After(5 * time.Second):
		t.Fatal("sync cycle was not cancelled by Shutdown")
	}
}

func TestEngine_Initialize_StoreFailure(t *testing.T) {
	e := New(Deps{
		OpenStore: func(context.Context) (store.SyncStore, error) { return nil, errors.New("disk gone") },
	}, enabled())

	err := e.Initialize(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Equal(t, []string{MsgNotInitialized}, e.TriggerSync(testContext()).Errors)
}

func TestEngine_Initialize_SeedsCursor(t *testing.T) {
	opts := enabled()
	opts.LastSyncSequence = 42
	te := newTestEngine(t, false, opts)
	require.NoError(t, te.Initialize(te.ctx))

	seq, err := te.SyncSequence(te.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
}

// ── TriggerSync ──────────────────────────────────────────────────────────────

func TestEngine_TriggerSync_Disabled(t *testing.T) {
	te := newTestEngine(t, true, Options{})
	require.NoError(t, te.Initialize(te.ctx))

	assert.Equal(t, []string{MsgSyncDisabled}, te.TriggerSync(te.ctx).Errors)
	assert.Equal(t, models.EngineStateDisabled, te.GetStatus(te.ctx).State)
}

func TestEngine_TriggerSync_NotInitialized(t *testing.T) {
	te := newTestEngine(t, true, enabled())

	assert.Equal(t, []string{MsgNotInitialized}, te.TriggerSync(te.ctx).Errors)
}

func TestEngine_TriggerSync_RecordsLastError(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))
	require.NoError(t, te.QueueChange(te.ctx, note("n1", "a"), models.OperationCreate))

	gomock.InOrder(
		te.transport.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{}, adapter.ErrServerUnavailable),
		te.transport.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil),
		te.transport.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(acceptAll),
		te.transport.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil),
	)

	// включаем сеть без запуска фоновой задачи
	setOnlineQuietly(t, te)

	result := te.TriggerSync(te.ctx)
	require.NotEmpty(t, result.Errors)
	status := te.GetStatus(te.ctx)
	assert.Equal(t, models.EngineStateError, status.State)
	assert.Contains(t, status.Error, "Push failed")
	require.NotNil(t, status.LastSyncAt)

	result = te.TriggerSync(te.ctx)
	assert.Empty(t, result.Errors)
	status = te.GetStatus(te.ctx)
	assert.Equal(t, models.EngineStateIdle, status.State)
	assert.Empty(t, status.Error)
	assert.Zero(t, status.PendingChanges)
}

// setOnlineQuietly переводит монитор в онлайн, не давая фоновой задаче
// запустить свой цикл.
func setOnlineQuietly(t *testing.T, te *testEngine) {
	t.Helper()
	te.mu.Lock()
	unsubscribe := te.unsubscribe
	te.unsubscribe = nil
	te.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
	te.monitor.SetOnline(true)
}

func TestEngine_TriggerSync_OfflineDoesNotRecordError(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))

	result := te.TriggerSync(te.ctx)
	assert.Equal(t, []string{"Offline"}, result.Errors)

	status := te.GetStatus(te.ctx)
	assert.Equal(t, models.EngineStateOffline, status.State)
	assert.Empty(t, status.Error)
	assert.Nil(t, status.LastSyncAt)
}

func TestEngine_ManualModeDoesNotPoll(t *testing.T) {
	opts := enabled()
	opts.Manual = true
	te := newTestEngine(t, true, opts)
	require.NoError(t, te.Initialize(te.ctx))
	assert.False(t, te.job.Running())

	te.monitor.SetOnline(false)
	te.monitor.SetOnline(true)
	assert.False(t, te.job.Running(), "network transitions are ignored")

	te.transport.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil)
	result := te.TriggerSync(te.ctx)
	assert.Empty(t, result.Errors)
}

// ── local changes ────────────────────────────────────────────────────────────

func TestEngine_AddSyncMetadata(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))

	n := note("n1", "a")
	sv := int64(3)
	n.Sync = &models.SyncMetadata{Version: 3, ServerVersion: &sv}

	stamped := te.AddSyncMetadata(n)
	assert.Equal(t, int64(4), stamped.Sync.Version)
	assert.Equal(t, te.GetDeviceID(), stamped.Sync.DeviceID)
	assert.Equal(t, int64(3), *stamped.Sync.ServerVersion)
	assert.NotEmpty(t, stamped.Sync.ContentHash)
}

func TestEngine_QueueChange_StampsAndNotifies(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))

	var (
		mu       sync.Mutex
		statuses []models.EngineStatus
	)
	unsubscribe := te.OnStatusChange(te.ctx, func(s models.EngineStatus) {
		mu.Lock()
		statuses = append(statuses, s)
		mu.Unlock()
	})
	defer unsubscribe()

	require.NoError(t, te.QueueChange(te.ctx, note("n1", "a"), models.OperationCreate))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, statuses, 2, "сразу при подписке и после постановки в очередь")
	assert.Zero(t, statuses[0].PendingChanges)
	assert.Equal(t, 1, statuses[1].PendingChanges)
	assert.Equal(t, models.EngineStateOffline, statuses[1].State)
}

func TestEngine_QueueChange_RestampsOnlyChangedContent(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))

	st, _, _, err := te.components()
	require.NoError(t, err)
	queuedVersion := func() int64 {
		t.Helper()
		change, err := st.GetQueuedChange(te.ctx, "n1")
		require.NoError(t, err)
		require.NotNil(t, change)
		return change.Version
	}

	stamped := te.AddSyncMetadata(note("n1", "a"))
	require.NoError(t, te.QueueChange(te.ctx, stamped, models.OperationCreate))
	assert.Equal(t, int64(1), queuedVersion(), "хеш совпадает — версия не меняется")

	// текст изменён, метаданные старые
	edited := stamped.Clone()
	edited.Content = note("n1", "b").Content
	require.NoError(t, te.QueueChange(te.ctx, edited, models.OperationUpdate))
	assert.Equal(t, int64(2), queuedVersion())

	change, err := st.GetQueuedChange(te.ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, utils.ContentHash(edited), change.Payload.Sync.ContentHash)
}

func TestEngine_QueueDelete_UsesNextVersion(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))

	n := te.AddSyncMetadata(note("n1", "a"))
	n = te.AddSyncMetadata(n)
	require.NoError(t, te.QueueChange(te.ctx, n, models.OperationUpdate))
	require.NoError(t, te.QueueDelete(te.ctx, "n1"))

	st, _, _, err := te.components()
	require.NoError(t, err)
	change, err := st.GetQueuedChange(te.ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, models.OperationDelete, change.Operation)
	assert.Equal(t, int64(3), change.Version)
}

// ── status ───────────────────────────────────────────────────────────────────

func TestEngine_StatusPrecedence(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))
	st, _, _, err := te.components()
	require.NoError(t, err)

	require.NoError(t, st.StoreConflict(te.ctx, models.Conflict{NoteID: "n1", RemoteVersion: 2, Type: models.ConflictTypeEdit}))
	te.mu.Lock()
	te.lastError = "Push failed: boom"
	te.mu.Unlock()

	// offline перекрывает конфликт
	assert.Equal(t, models.EngineStateOffline, te.GetStatus(te.ctx).State)

	setOnlineQuietly(t, te)
	status := te.GetStatus(te.ctx)
	assert.Equal(t, models.EngineStateConflict, status.State)
	assert.Equal(t, 1, status.ConflictCount)

	require.NoError(t, st.RemoveConflict(te.ctx, "n1"))
	assert.Equal(t, models.EngineStateError, te.GetStatus(te.ctx).State)

	te.mu.Lock()
	te.lastError = ""
	te.running = 1
	te.mu.Unlock()
	assert.Equal(t, models.EngineStateSyncing, te.GetStatus(te.ctx).State)

	te.mu.Lock()
	te.running = 0
	te.mu.Unlock()
	assert.Equal(t, models.EngineStateIdle, te.GetStatus(te.ctx).State)
}

func TestEngine_OnStatusChange_Unsubscribe(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))

	calls := 0
	unsubscribe := te.OnStatusChange(te.ctx, func(models.EngineStatus) { calls++ })
	assert.Equal(t, 1, calls)

	unsubscribe()
	unsubscribe()
	require.NoError(t, te.QueueChange(te.ctx, note("n1", "a"), models.OperationCreate))
	assert.Equal(t, 1, calls)
}

func TestEngine_GetFailedChanges(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))
	require.NoError(t, te.QueueChange(te.ctx, note("n1", "a"), models.OperationCreate))

	st, _, _, err := te.components()
	require.NoError(t, err)
	require.NoError(t, st.RecordPushFailure(te.ctx, "n1", 1, "too large", false))

	failed, err := te.GetFailedChanges(te.ctx)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "too large", failed[0].LastError)
	assert.Equal(t, 1, te.GetStatus(te.ctx).FailedChanges)
}

// ── network ──────────────────────────────────────────────────────────────────

func TestEngine_OfflineQueueDrainsWhenOnline(t *testing.T) {
	te := newTestEngine(t, false, Options{Enabled: true, SyncInterval: 20 * time.Millisecond})
	require.NoError(t, te.Initialize(te.ctx))

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, te.QueueChange(te.ctx, note(id, id), models.OperationCreate))
	}
	assert.False(t, te.job.Running())

	te.transport.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(acceptAll).AnyTimes()
	te.transport.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil).AnyTimes()

	te.monitor.SetOnline(true)
	assert.True(t, te.job.Running())

	assert.Eventually(t, func() bool {
		return te.GetStatus(te.ctx).PendingChanges == 0
	}, 2*time.Second, 10*time.Millisecond)

	te.monitor.SetOnline(false)
	assert.False(t, te.job.Running())
	assert.Equal(t, models.EngineStateOffline, te.GetStatus(te.ctx).State)
}

// ── vault watcher handler ────────────────────────────────────────────────────

func TestEngine_NoteChanged(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))
	st, _, _, err := te.components()
	require.NoError(t, err)

	// новый файл без метаданных — create с версией 1
	require.NoError(t, te.NoteChanged(te.ctx, note("n1", "a")))
	change, err := st.GetQueuedChange(te.ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, models.OperationCreate, change.Operation)
	assert.Equal(t, int64(1), change.Version)

	saved, err := te.vault.ReadNote(te.ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, saved.Sync)
	assert.Equal(t, int64(1), saved.Sync.Version)

	// эхо собственной записи игнорируется
	require.NoError(t, te.NoteChanged(te.ctx, saved))
	change, err = st.GetQueuedChange(te.ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), change.Version)

	// внешняя правка — update со следующей версией
	edited := saved.Clone()
	edited.Content = json.RawMessage(`{"text":"edited"}`)
	require.NoError(t, te.NoteChanged(te.ctx, edited))
	change, err = st.GetQueuedChange(te.ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, models.OperationUpdate, change.Operation)
	assert.Equal(t, int64(2), change.Version)
}

func TestEngine_NoteRemoved(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))
	st, _, _, err := te.components()
	require.NoError(t, err)

	// неотслеживаемая заметка — ничего не ставится
	require.NoError(t, te.NoteRemoved(te.ctx, "unknown"))
	size, err := st.GetQueueSize(te.ctx)
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, te.QueueChange(te.ctx, note("n1", "a"), models.OperationCreate))
	require.NoError(t, te.NoteRemoved(te.ctx, "n1"))
	change, err := st.GetQueuedChange(te.ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, models.OperationDelete, change.Operation)
	assert.Equal(t, int64(2), change.Version)

	// повторное удаление не меняет версию
	require.NoError(t, te.NoteRemoved(te.ctx, "n1"))
	change, err = st.GetQueuedChange(te.ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), change.Version)
}

// ── conflicts ────────────────────────────────────────────────────────────────

func TestEngine_ResolveConflict(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))
	st, _, _, err := te.components()
	require.NoError(t, err)

	remote := te.AddSyncMetadata(note("n1", "remote"))
	require.NoError(t, st.StoreConflict(te.ctx, models.Conflict{
		NoteID: "n1", LocalNote: note("n1", "local"), RemoteNote: remote,
		LocalVersion: 1, RemoteVersion: 2, Type: models.ConflictTypeEdit,
	}))

	conflicts, err := te.GetConflicts(te.ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)

	_, err = te.ResolveConflict(te.ctx, "n1", models.ResolutionKeepRemote)
	require.NoError(t, err)

	conflicts, err = te.GetConflicts(te.ctx)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	saved, err := te.vault.ReadNote(te.ctx, "n1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"remote"}`, string(saved.Content))
}

// ── migration ────────────────────────────────────────────────────────────────

func TestEngine_MigrateVault(t *testing.T) {
	te := newTestEngine(t, false, enabled())
	require.NoError(t, te.Initialize(te.ctx))
	require.NoError(t, te.vault.SaveNote(te.ctx, note("legacy", "x")))

	needs, err := te.NeedsMigration(te.ctx)
	require.NoError(t, err)
	assert.True(t, needs)

	var last models.MigrationProgress
	result, err := te.MigrateVault(te.ctx, func(p models.MigrationProgress) { last = p })
	require.NoError(t, err)
	assert.Equal(t, 1, result.Migrated)
	assert.Equal(t, models.MigrationPhaseComplete, last.Phase)
	assert.Equal(t, 1, te.GetStatus(te.ctx).PendingChanges)
}
