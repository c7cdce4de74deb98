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

// MySQLMessageRepository implements Message persistence for MySQL databases.
type MySQLMessageRepository struct {
	db *sql.DB
}

// Create inserts a new message into the MySQL database.
func (m *MySQLMessageRepository) Create(ctx context.Context, message *messageDomain.Message) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO messages (id, group_id, sender_id, text, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	binID, err := message.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal message id")
	}
	binGroupID, err := message.GroupID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}
	binSenderID, err := message.SenderID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal sender id")
	}

	_, err = querier.ExecContext(ctx, query,
		binID, binGroupID, binSenderID, message.Text, message.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create message")
	}
	return nil
}

// GetByID retrieves a message and its like list by ID.
func (m *MySQLMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*messageDomain.Message, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, group_id, sender_id, text, created_at FROM messages WHERE id = ?`

	binID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal message id")
	}

	var message messageDomain.Message
	err = querier.QueryRowContext(ctx, query, binID).Scan(
		&message.ID, &message.GroupID, &message.SenderID, &message.Text, &message.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messageDomain.ErrMessageNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get message by id")
	}

	likes, err := m.loadLikes(ctx, message.ID)
	if err != nil {
		return nil, err
	}
	message.Likes = likes

	return &message, nil
}

// ListByGroup retrieves every message in a group ordered by creation time.
func (m *MySQLMessageRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*messageDomain.Message, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, group_id, sender_id, text, created_at FROM messages
			  WHERE group_id = ?
			  ORDER BY created_at`

	binGroupID, err := groupID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal group id")
	}

	rows, err := querier.QueryContext(ctx, query, binGroupID)
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
		likes, err := m.loadLikes(ctx, message.ID)
		if err != nil {
			return nil, err
		}
		message.Likes = likes
	}

	return messages, nil
}

// Delete removes a message and its likes.
func (m *MySQLMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	binID, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal message id")
	}

	if _, err := querier.ExecContext(ctx, `DELETE FROM message_likes WHERE message_id = ?`, binID); err != nil {
		return apperrors.Wrap(err, "failed to delete message likes")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, binID)
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
func (m *MySQLMessageRepository) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	binGroupID, err := groupID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal group id")
	}

	likesQuery := `DELETE ml FROM message_likes ml
				   INNER JOIN messages m ON m.id = ml.message_id
				   WHERE m.group_id = ?`
	if _, err := querier.ExecContext(ctx, likesQuery, binGroupID); err != nil {
		return 0, apperrors.Wrap(err, "failed to delete group message likes")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM messages WHERE group_id = ?`, binGroupID)
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
func (m *MySQLMessageRepository) AddLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT IGNORE INTO message_likes (message_id, user_id, created_at)
			  VALUES (?, ?, ?)`

	binMessageID, err := messageID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal message id")
	}
	binUserID, err := userID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, binMessageID, binUserID, time.Now().UTC())
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
func (m *MySQLMessageRepository) RemoveLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM message_likes WHERE message_id = ? AND user_id = ?`

	binMessageID, err := messageID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal message id")
	}
	binUserID, err := userID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, binMessageID, binUserID)
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
func (m *MySQLMessageRepository) loadLikes(ctx context.Context, messageID uuid.UUID) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT user_id FROM message_likes WHERE message_id = ? ORDER BY created_at`

	binID, err := messageID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal message id")
	}

	rows, err := querier.QueryContext(ctx, query, binID)
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

// NewMySQLMessageRepository creates a new MySQL-backed message repository.
func NewMySQLMessageRepository(db *sql.DB) *MySQLMessageRepository {
	return &MySQLMessageRepository{db: db}
}
