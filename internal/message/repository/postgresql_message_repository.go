// Package repository implements data persistence for messages and likes.
// Repositories support both PostgreSQL and MySQL. Like inserts rely on the
// unique (message_id, user_id) constraint so concurrent toggles stay
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
	messageDomain "github.com/allisson/messaging/internal/message/domain"
)

// PostgreSQLMessageRepository implements Message persistence for PostgreSQL databases.
type PostgreSQLMessageRepository struct {
	db *sql.DB
}

// Create inserts a new message into the PostgreSQL database.
func (p *PostgreSQLMessageRepository) Create(ctx context.Context, message *messageDomain.Message) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO messages (id, group_id, sender_id, text, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(ctx, query,
		message.ID, message.GroupID, message.SenderID, message.Text, message.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create message")
	}
	return nil
}

// GetByID retrieves a message and its like list by ID.
func (p *PostgreSQLMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*messageDomain.Message, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, group_id, sender_id, text, created_at FROM messages WHERE id = $1`

	var message messageDomain.Message
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&message.ID, &message.GroupID, &message.SenderID, &message.Text, &message.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messageDomain.ErrMessageNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get message by id")
	}

	likes, err := p.loadLikes(ctx, message.ID)
	if err != nil {
		return nil, err
	}
	message.Likes = likes

	return &message, nil
}

// ListByGroup retrieves every message in a group ordered by creation time.
func (p *PostgreSQLMessageRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*messageDomain.Message, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, group_id, sender_id, text, created_at FROM messages
			  WHERE group_id = $1
			  ORDER BY created_at`

	rows, err := querier.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list messages")
	}
	defer rows.Close()

	var messages []*messageDomain.Message
	for rows.Next() {
		var message messageDomain.Message
		if err := rows.Scan(
			&message.ID, &message.GroupID, &message.SenderID, &message.Text, &message.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan message")
		}
		messages = append(messages, &message)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate messages")
	}

	for _, message := range messages {
		likes, err := p.loadLikes(ctx, message.ID)
		if err != nil {
			return nil, err
		}
		message.Likes = likes
	}

	return messages, nil
}

// Delete removes a message and its likes.
func (p *PostgreSQLMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM message_likes WHERE message_id = $1`, id); err != nil {
		return apperrors.Wrap(err, "failed to delete message likes")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete message")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted message")
	}
	if affected == 0 {
		return messageDomain.ErrMessageNotFound
	}
	return nil
}

// DeleteByGroup removes every message in a group along with their likes.
// Returns the number of deleted messages.
func (p *PostgreSQLMessageRepository) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	likesQuery := `DELETE FROM message_likes
				   WHERE message_id IN (SELECT id FROM messages WHERE group_id = $1)`
	if _, err := querier.ExecContext(ctx, likesQuery, groupID); err != nil {
		return 0, apperrors.Wrap(err, "failed to delete group message likes")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM messages WHERE group_id = $1`, groupID)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete group messages")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to check deleted group messages")
	}
	return affected, nil
}

// AddLike inserts a like row. Returns false when the user had already liked
// the message; the unique constraint makes the insert atomic.
func (p *PostgreSQLMessageRepository) AddLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO message_likes (message_id, user_id, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (message_id, user_id) DO NOTHING`

	result, err := querier.ExecContext(ctx, query, messageID, userID, time.Now().UTC())
	if err != nil {
		return false, apperrors.Wrap(err, "failed to add message like")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check added message like")
	}
	return affected > 0, nil
}

// RemoveLike deletes a like row. Returns false when the user had not liked
// the message.
func (p *PostgreSQLMessageRepository) RemoveLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM message_likes WHERE message_id = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, messageID, userID)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to remove message like")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check removed message like")
	}
	return affected > 0, nil
}

// loadLikes fetches the IDs of users who liked a message ordered by like time.
func (p *PostgreSQLMessageRepository) loadLikes(ctx context.Context, messageID uuid.UUID) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT user_id FROM message_likes WHERE message_id = $1 ORDER BY created_at`

	rows, err := querier.QueryContext(ctx, query, messageID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load message likes")
	}
	defer rows.Close()

	var likes []uuid.UUID
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan message like")
		}
		likes = append(likes, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate message likes")
	}

	return likes, nil
}

// NewPostgreSQLMessageRepository creates a new PostgreSQL-backed message repository.
func NewPostgreSQLMessageRepository(db *sql.DB) *PostgreSQLMessageRepository {
	return &PostgreSQLMessageRepository{db: db}
}
