package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/network"
)

type syncJob struct {
	runner  CycleRunner
	monitor network.Monitor

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls runner.RunSyncCycle on a ticker
// while monitor reports online. The job is idle until Start is called.
func NewSyncJob(runner CycleRunner, monitor network.Monitor) SyncJob {
	if monitor == nil {
		monitor = network.Offline()
	}
	return &syncJob{runner: runner, monitor: monitor}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that runs a cycle right away and then every
// interval. If
// interval is zero or negative config.DefaultSyncInterval is used. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// runOnce runs a cycle that Stop does not interrupt.
func (j *syncJob) runOnce(ctx context.Context) {
	if ctx.Err() != nil || !j.monitor.IsOnline() {
		return
	}

	result := j.runner.RunSyncCycle(context.WithoutCancel(ctx))
	if len(result.Errors) > 0 {
		logger.FromContext(ctx).Debug().
			Strs("errors", result.Errors).
			Msg("periodic sync finished with errors")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.cancel != nil
}
