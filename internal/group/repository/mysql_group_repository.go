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

// MySQLGroupRepository implements Group persistence for MySQL databases.
type MySQLGroupRepository struct {
	db *sql.DB
}

// Create inserts a new group into the MySQL database.
func (m *MySQLGroupRepository) Create(ctx context.Context, group *groupDomain.Group) error {
	querier := database.GetTx(ctx, m.db)

	// GROUPS is a reserved word in MySQL 8, hence the quoting.
	query := "INSERT INTO `groups` (id, name, created_at) VALUES (?, ?, ?)"

	id, err := group.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	_, err = querier.ExecContext(ctx, query, id, group.Name, group.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create group")
	}
	return nil
}

// GetByID retrieves a group and its member list by ID.
func (m *MySQLGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*groupDomain.Group, error) {
	querier := database.GetTx(ctx, m.db)

	query := "SELECT id, name, created_at FROM `groups` WHERE id = ?"

	binID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal group id")
	}

	var group groupDomain.Group
	err = querier.QueryRowContext(ctx, query, binID).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, groupDomain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group by id")
	}

	members, err := m.loadMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return &group, nil
}

// Delete removes a group and its memberships.
func (m *MySQLGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	binID, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	if _, err := querier.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = ?`, binID); err != nil {
		return apperrors.Wrap(err, "failed to delete group members")
	}

	result, err := querier.ExecContext(ctx, "DELETE FROM `groups` WHERE id = ?", binID)
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
func (m *MySQLGroupRepository) SearchByName(ctx context.Context, name string) ([]*groupDomain.Group, error) {
	querier := database.GetTx(ctx, m.db)

	query := "SELECT id, name, created_at FROM `groups` " +
		"WHERE LOWER(name) LIKE CONCAT('%', LOWER(?), '%') " +
		"ORDER BY created_at"

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
		members, err := m.loadMembers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		group.Members = members
	}

	return groups, nil
}

// AddMember inserts a membership row. Returns false when the user was
// already a member; the unique constraint makes the insert atomic.
func (m *MySQLGroupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT IGNORE INTO group_members (group_id, user_id, created_at)
			  VALUES (?, ?, ?)`

	binGroupID, err := groupID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal group id")
	}
	binUserID, err := userID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, binGroupID, binUserID, time.Now().UTC())
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
func (m *MySQLGroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM group_members WHERE group_id = ? AND user_id = ?`

	binGroupID, err := groupID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal group id")
	}
	binUserID, err := userID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, binGroupID, binUserID)
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
func (m *MySQLGroupRepository) loadMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT user_id FROM group_members WHERE group_id = ? ORDER BY created_at`

	binID, err := groupID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal group id")
	}

	rows, err := querier.QueryContext(ctx, query, binID)
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

// NewMySQLGroupRepository creates a new MySQL-backed group repository.
func NewMySQLGroupRepository(db *sql.DB) *MySQLGroupRepository {
	return &MySQLGroupRepository{db: db}
}
