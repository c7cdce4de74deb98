// Package repository implements data persistence for groups and memberships.
// Repositories support both PostgreSQL and MySQL. Membership inserts rely on
// the unique (group_id, user_id) constraint so concurrent changes stay
// consistent without a read-modify-write cycle.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/messaging/internal/database"
	apperrors "github.com/allisson/messaging/internal/errors"
	groupDomain "github.com/allisson/messaging/internal/group/domain"
)

// PostgreSQLGroupRepository implements Group persistence for PostgreSQL databases.
type PostgreSQLGroupRepository struct {
	db *sql.DB
}

// Create inserts a new group into the PostgreSQL database.
func (p *PostgreSQLGroupRepository) Create(ctx context.Context, group *groupDomain.Group) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO groups (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := querier.ExecContext(ctx, query, group.ID, group.Name, group.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create group")
	}
	return nil
}

// GetByID retrieves a group and its member list by ID.
func (p *PostgreSQLGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*groupDomain.Group, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at FROM groups WHERE id = $1`

	var group groupDomain.Group
	err := querier.QueryRowContext(ctx, query, id).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, groupDomain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group by id")
	}

	members, err := p.loadMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return &group, nil
}

// Delete removes a group and its memberships.
func (p *PostgreSQLGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = $1`, id); err != nil {
		return apperrors.Wrap(err, "failed to delete group members")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted group")
	}
	if affected == 0 {
		return groupDomain.ErrGroupNotFound
	}
	return nil
}

// SearchByName retrieves groups whose name contains the given fragment,
// case-insensitively. An empty fragment matches every group.
func (p *PostgreSQLGroupRepository) SearchByName(ctx context.Context, name string) ([]*groupDomain.Group, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at FROM groups
			  WHERE name ILIKE '%' || $1 || '%'
			  ORDER BY created_at`

	rows, err := querier.QueryContext(ctx, query, name)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search groups")
	}
	defer rows.Close()

	var groups []*groupDomain.Group
	for rows.Next() {
		var group groupDomain.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group")
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate groups")
	}

	for _, group := range groups {
		members, err := p.loadMembers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		group.Members = members
	}

	return groups, nil
}

// AddMember inserts a membership row. Returns false when the user was
// already a member; the unique constraint makes the insert atomic.
func (p *PostgreSQLGroupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO group_members (group_id, user_id, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (group_id, user_id) DO NOTHING`

	result, err := querier.ExecContext(ctx, query, groupID, userID, time.Now().UTC())
	if err != nil {
		return false, apperrors.Wrap(err, "failed to add group member")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check added group member")
	}
	return affected > 0, nil
}

// RemoveMember deletes a membership row. Returns false when the user was
// not a member.
func (p *PostgreSQLGroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to remove group member")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check removed group member")
	}
	return affected > 0, nil
}

// loadMembers fetches the member IDs of a group ordered by join time.
func (p *PostgreSQLGroupRepository) loadMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT user_id FROM group_members WHERE group_id = $1 ORDER BY created_at`

	rows, err := querier.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load group members")
	}
	defer rows.Close()

	var members []uuid.UUID
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group member")
		}
		members = append(members, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate group members")
	}

	return members, nil
}

// NewPostgreSQLGroupRepository creates a new PostgreSQL-backed group repository.
func NewPostgreSQLGroupRepository(db *sql.DB) *PostgreSQLGroupRepository {
	return &PostgreSQLGroupRepository{db: db}
}
