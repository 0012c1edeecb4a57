package workers

import (
	"context"

	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
)

// Workers aggregates the registered background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the worker set from configuration. A zero sweep interval
// leaves the session sweeper out entirely.
func NewWorkers(cfg config.Workers, sessions store.SessionRepository, log *logger.Logger) *Workers {
	var registered []Worker
	if cfg.SessionSweepInterval > 0 {
		registered = append(registered, NewSessionSweeper(sessions, cfg.SessionSweepInterval, log))
	}

	return &Workers{workers: registered}
}

// Run starts every registered worker in its own goroutine. Workers stop when
// ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
