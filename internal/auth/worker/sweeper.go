// Package worker implements background maintenance jobs for authentication.
package worker

import (
	"context"
	"log/slog"
	"time"

	authUseCase "github.com/allisson/messaging/internal/auth/usecase"
)

// Sweeper periodically purges revocation records for tokens that have
// already expired. A record only matters while its token could still pass
// the signature check; after that the store entry is dead weight.
type Sweeper struct {
	authUseCase authUseCase.AuthUseCase
	interval    time.Duration
	logger      *slog.Logger
}

// NewSweeper creates a new revocation sweeper.
func NewSweeper(
	authUseCase authUseCase.AuthUseCase,
	interval time.Duration,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		authUseCase: authUseCase,
		interval:    interval,
		logger:      logger,
	}
}

// Start runs the sweep loop until the context is canceled. A failing sweep
// logs the error and waits for the next tick; it never stops the loop.
func (s *Sweeper) Start(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Info("starting revocation sweeper",
			slog.Duration("interval", s.interval),
		)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if s.logger != nil {
				s.logger.Info("stopping revocation sweeper")
			}
			return ctx.Err()
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				if s.logger != nil {
					s.logger.Error("failed to purge revoked tokens", slog.Any("error", err))
				}
			}
		}
	}
}

// Sweep runs a single purge pass.
func (s *Sweeper) Sweep(ctx context.Context) error {
	deleted, err := s.authUseCase.PurgeExpired(ctx)
	if err != nil {
		return err
	}

	if s.logger != nil && deleted > 0 {
		s.logger.Info("purged revoked tokens", slog.Int64("count", deleted))
	}
	return nil
}
