// Package repository implements data persistence for user accounts.
// Repositories support both PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/messaging/internal/database"
	apperrors "github.com/allisson/messaging/internal/errors"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// PostgreSQLUserRepository implements User persistence for PostgreSQL databases.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user into the PostgreSQL database.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, username, password, is_admin, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Password,
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return userDomain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (p *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, password, is_admin, created_at, updated_at
			  FROM users WHERE id = $1`

	var user userDomain.User
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByUsername retrieves a user by username.
func (p *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, password, is_admin, created_at, updated_at
			  FROM users WHERE username = $1`

	var user userDomain.User
	err := querier.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	return &user, nil
}

// Update persists changed user fields.
func (p *PostgreSQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users SET username = $1, password = $2, is_admin = $3, updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.Password,
		user.IsAdmin,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return userDomain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated user")
	}
	if affected == 0 {
		return userDomain.ErrUserNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLUserRepository creates a new PostgreSQL-backed user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
