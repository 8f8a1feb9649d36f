package workers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type named struct {
	name   string
	worker Worker
}

type Workers struct {
	workers []named

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers a worker under a name used in logs and errors.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers = append(w.workers, named{name: name, worker: worker})
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. The first failing worker cancels the rest; its error is returned.
// Cancellation of ctx itself is a clean stop.
func (w *Workers) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for _, nw := range w.workers {
		group.Go(func() error {
			w.logger.Debug().Str("func", "*Workers.Run").Str("worker", nw.name).Msg("worker started")

			err := nw.worker.Run(groupCtx)
			if err != nil && !isStop(err) {
				w.logger.Err(err).Str("func", "*Workers.Run").Str("worker", nw.name).Msg("worker failed")
				return fmt.Errorf("worker %s: %w", nw.name, err)
			}

			w.logger.Debug().Str("func", "*Workers.Run").Str("worker", nw.name).Msg("worker stopped")
			return nil
		})
	}

	return group.Wait()
}

func isStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
