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

// MySQLUserRepository implements User persistence for MySQL databases.
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user into the MySQL database.
func (m *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, username, password, is_admin, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Username,
		user.Password,
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return userDomain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (m *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, password, is_admin, created_at, updated_at
			  FROM users WHERE id = ?`

	binID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	var user userDomain.User
	err = querier.QueryRowContext(ctx, query, binID).Scan(
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
func (m *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, password, is_admin, created_at, updated_at
			  FROM users WHERE username = ?`

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
func (m *MySQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users SET username = ?, password = ?, is_admin = ?, updated_at = ?
			  WHERE id = ?`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.Password,
		user.IsAdmin,
		user.UpdatedAt,
		id,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// NewMySQLUserRepository creates a new MySQL-backed user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
