package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the enabled workers. A zero sweep interval disables the
// reset token sweeper.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.ResetSweepInterval > 0 {
		w.workers = append(w.workers, NewResetTokenSweeper(storages.UserRepository, cfg.ResetSweepInterval, logger))
	}
	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
