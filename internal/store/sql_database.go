package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/migrations"
)

// retryDelays are the pauses between attempts of an idempotent operation
// that failed with a retryable error.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs op and repeats it while the error is classified as
// [Retryable]. Only idempotent operations may be wrapped.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		err = op()
	}

	return err
}
