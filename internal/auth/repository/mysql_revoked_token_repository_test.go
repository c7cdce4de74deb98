package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
)

func TestMySQLRevokedTokenRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMySQLRevokedTokenRepository(db)
	revokedToken := &authDomain.RevokedToken{
		TokenHash: "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae",
		IssuedAt:  time.Now().UTC().Add(-time.Minute),
		CreatedAt: time.Now().UTC(),
	}

	t.Run("Create", func(t *testing.T) {
		mock.ExpectExec("INSERT IGNORE INTO revoked_tokens").
			WithArgs(revokedToken.TokenHash, revokedToken.IssuedAt, revokedToken.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), revokedToken)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(revokedToken.TokenHash).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.Exists(context.Background(), revokedToken.TokenHash)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PurgeIssuedBefore", func(t *testing.T) {
		threshold := time.Now().UTC().Add(-time.Hour)
		mock.ExpectExec("DELETE FROM revoked_tokens").
			WithArgs(threshold).
			WillReturnResult(sqlmock.NewResult(0, 2))

		deleted, err := repo.PurgeIssuedBefore(context.Background(), threshold)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountIssuedBefore", func(t *testing.T) {
		threshold := time.Now().UTC().Add(-time.Hour)
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(threshold).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

		count, err := repo.CountIssuedBefore(context.Background(), threshold)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
