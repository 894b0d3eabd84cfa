package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Worker is a long-running component that stops when ctx is cancelled.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager starts and supervises a set of workers.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start runs every worker until ctx is cancelled. A worker that fails stops
// the others and its error is returned.
func (m *Manager) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range m.workers {
		w := w
		g.Go(func() error {
			return w.Start(gctx)
		})
	}
	return g.Wait()
}
