// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
)

// resetTokenClearer is the part of store.UserRepository the sweeper needs.
type resetTokenClearer interface {
	ClearExpiredResetTokens(ctx context.Context) (int64, error)
}

// ResetTokenSweeper periodically drops expired password reset tokens. Expired
// tokens are already unusable; sweeping keeps the digest and its expiry from
// lingering in the users table.
type ResetTokenSweeper struct {
	users    resetTokenClearer
	interval time.Duration

	logger *logger.Logger
}

func NewResetTokenSweeper(users resetTokenClearer, interval time.Duration, logger *logger.Logger) *ResetTokenSweeper {
	return &ResetTokenSweeper{
		users:    users,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is done.
func (s *ResetTokenSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("reset token sweeper started")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("reset token sweeper stopped")
			return
		case <-ticker.C:
			_, _ = s.Sweep(ctx)
		}
	}
}

// Sweep clears every reset token that has expired by the database clock.
func (s *ResetTokenSweeper) Sweep(ctx context.Context) (int64, error) {
	cleared, err := s.users.ClearExpiredResetTokens(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*ResetTokenSweeper.Sweep").Msg("error clearing expired reset tokens")
		}
		return 0, err
	}

	if cleared > 0 {
		s.logger.Info().Int64("cleared", cleared).Msg("expired reset tokens cleared")
	}
	return cleared, nil
}
