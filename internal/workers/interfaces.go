// Package workers runs the long-lived background loops of the notesync
// watch mode (connectivity probe, vault watcher) as one unit.
package workers

import "context"

// Worker is a background loop that runs until ctx is done.
//
// Run returns nil after a clean stop. A non-nil error stops every other
// worker started by the same [Workers].
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
