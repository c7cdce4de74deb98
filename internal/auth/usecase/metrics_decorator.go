package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	"github.com/allisson/messaging/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, username string, password string) (string, error) {
	start := time.Now()
	token, err := a.next.Login(ctx, username, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return token, err
}

// Logout records metrics for logout operations.
func (a *authUseCaseWithMetrics) Logout(ctx context.Context, token string) error {
	start := time.Now()
	err := a.next.Logout(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "logout", status)
	a.metrics.RecordDuration(ctx, "auth", "logout", time.Since(start), status)

	return err
}

// Authenticate records metrics for token verification operations.
func (a *authUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*authDomain.Identity, error) {
	start := time.Now()
	identity, err := a.next.Authenticate(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return identity, err
}

// PurgeExpired records metrics for revocation purge operations.
func (a *authUseCaseWithMetrics) PurgeExpired(ctx context.Context) (int64, error) {
	start := time.Now()
	deleted, err := a.next.PurgeExpired(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "revocation_purge", status)
	a.metrics.RecordDuration(ctx, "auth", "revocation_purge", time.Since(start), status)

	return deleted, err
}

// CountExpired is a read-only probe and is not instrumented.
func (a *authUseCaseWithMetrics) CountExpired(ctx context.Context) (int64, error) {
	return a.next.CountExpired(ctx)
}
