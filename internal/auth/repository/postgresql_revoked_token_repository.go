// Package repository implements data persistence for authentication.
// Repositories support both PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"time"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	"github.com/allisson/messaging/internal/database"
	apperrors "github.com/allisson/messaging/internal/errors"
)

// PostgreSQLRevokedTokenRepository implements RevokedToken persistence for PostgreSQL databases.
type PostgreSQLRevokedTokenRepository struct {
	db *sql.DB
}

// Create records a revoked token. Revoking the same token twice is a no-op.
func (p *PostgreSQLRevokedTokenRepository) Create(
	ctx context.Context,
	revokedToken *authDomain.RevokedToken,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO revoked_tokens (token_hash, issued_at, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (token_hash) DO NOTHING`

	_, err := querier.ExecContext(
		ctx,
		query,
		revokedToken.TokenHash,
		revokedToken.IssuedAt,
		revokedToken.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create revoked token")
	}
	return nil
}

// Exists reports whether a token hash is present in the revocation store.
func (p *PostgreSQLRevokedTokenRepository) Exists(ctx context.Context, tokenHash string) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_hash = $1)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, tokenHash).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check revoked token")
	}
	return exists, nil
}

// PurgeIssuedBefore deletes revocation records whose tokens were issued
// before the given threshold and returns the number of deleted rows.
func (p *PostgreSQLRevokedTokenRepository) PurgeIssuedBefore(
	ctx context.Context,
	threshold time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM revoked_tokens WHERE issued_at < $1`

	result, err := querier.ExecContext(ctx, query, threshold)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to purge revoked tokens")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count purged revoked tokens")
	}
	return deleted, nil
}

// CountIssuedBefore reports how many revocation records would be removed by
// PurgeIssuedBefore with the same threshold.
func (p *PostgreSQLRevokedTokenRepository) CountIssuedBefore(
	ctx context.Context,
	threshold time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM revoked_tokens WHERE issued_at < $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, threshold).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired revoked tokens")
	}
	return count, nil
}

// NewPostgreSQLRevokedTokenRepository creates a new PostgreSQL-backed revoked token repository.
func NewPostgreSQLRevokedTokenRepository(db *sql.DB) *PostgreSQLRevokedTokenRepository {
	return &PostgreSQLRevokedTokenRepository{db: db}
}
