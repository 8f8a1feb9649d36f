// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/network"
	"github.com/MKhiriev/go-note-sync/models"
)

// spyCoordinator считает вызовы RunSyncCycle.
type spyCoordinator struct {
	calls  atomic.Int64
	result models.SyncResult
	ctxErr atomic.Value
}

func (s *spyCoordinator) RunSyncCycle(ctx context.Context) models.SyncResult {
	s.calls.Add(1)
	s.ctxErr.Store(ctx.Err() == nil)
	return s.result
}

func (s *spyCoordinator) PushChanges(context.Context) models.SyncResult { return models.SyncResult{} }
func (s *spyCoordinator) PullChanges(context.Context) models.SyncResult { return models.SyncResult{} }
func (s *spyCoordinator) ApplyResolution(context.Context, string, models.Resolution) (*models.ResolvedConflict, error) {
	return nil, nil
}
func (s *spyCoordinator) Progress() models.SyncProgress { return models.SyncProgress{} }

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spyCoordinator{}, network.NewManual(true))
	require.NotNil(t, job)
	assert.False(t, job.Running())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_RunsCycles(t *testing.T) {
	spy := &spyCoordinator{}
	job := NewSyncJob(spy, network.NewManual(true))

	// Интервал 10ms — за 55ms должно быть несколько циклов
	job.Start(context.Background(), 10*time.Millisecond)
	assert.True(t, job.Running())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RunSyncCycle должен быть вызван несколько раз, вызвано: %d", got)
	assert.False(t, job.Running())
}

func TestSyncJob_Start_RunsImmediately(t *testing.T) {
	spy := &spyCoordinator{}
	job := NewSyncJob(spy, network.NewManual(true))

	// дефолтный интервал большой, но первый цикл запускается сразу
	job.Start(context.Background(), 0)
	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestSyncJob_SkipsCyclesWhileOffline(t *testing.T) {
	spy := &spyCoordinator{}
	monitor := network.NewManual(false)
	job := NewSyncJob(spy, monitor)

	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, spy.calls.Load(), "офлайн — циклов нет")

	monitor.SetOnline(true)
	assert.Eventually(t, func() bool { return spy.calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyCoordinator{}
	job := NewSyncJob(spy, network.NewManual(true))

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spyCoordinator{}, nil)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spyCoordinator{}, network.NewManual(true))

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyCoordinator{}
	job := NewSyncJob(spy, network.NewManual(true))
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job — внутри вызовет Stop()
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewSyncJob(&spyCoordinator{}, network.NewManual(true))
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestSyncJob_CycleErrors_DoNotStopJob(t *testing.T) {
	spy := &spyCoordinator{result: models.SyncResult{Errors: []string{"Push failed: boom"}}}
	job := NewSyncJob(spy, network.NewManual(true))

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestSyncJob_CycleContextSurvivesStop(t *testing.T) {
	spy := &spyCoordinator{}
	job := NewSyncJob(spy, network.NewManual(true))

	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	// цикл получает контекст, который Stop не отменяет
	assert.Equal(t, true, spy.ctxErr.Load())
}
