package repository

import (
	"context"
	"database/sql"
	"time"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	"github.com/allisson/messaging/internal/database"
	apperrors "github.com/allisson/messaging/internal/errors"
)

// MySQLRevokedTokenRepository implements RevokedToken persistence for MySQL databases.
type MySQLRevokedTokenRepository struct {
	db *sql.DB
}

// Create records a revoked token. Revoking the same token twice is a no-op.
func (m *MySQLRevokedTokenRepository) Create(
	ctx context.Context,
	revokedToken *authDomain.RevokedToken,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT IGNORE INTO revoked_tokens (token_hash, issued_at, created_at)
			  VALUES (?, ?, ?)`

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
func (m *MySQLRevokedTokenRepository) Exists(ctx context.Context, tokenHash string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_hash = ?)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, tokenHash).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check revoked token")
	}
	return exists, nil
}

// PurgeIssuedBefore deletes revocation records whose tokens were issued
// before the given threshold and returns the number of deleted rows.
func (m *MySQLRevokedTokenRepository) PurgeIssuedBefore(
	ctx context.Context,
	threshold time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM revoked_tokens WHERE issued_at < ?`

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
func (m *MySQLRevokedTokenRepository) CountIssuedBefore(
	ctx context.Context,
	threshold time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM revoked_tokens WHERE issued_at < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, threshold).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired revoked tokens")
	}
	return count, nil
}

// NewMySQLRevokedTokenRepository creates a new MySQL-backed revoked token repository.
func NewMySQLRevokedTokenRepository(db *sql.DB) *MySQLRevokedTokenRepository {
	return &MySQLRevokedTokenRepository{db: db}
}
