package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// MessageRepository defines persistence access for conversations and messages.
type MessageRepository interface {
	CreateConversation(ctx context.Context, propertyID int64, participantIDs []int64) (*domain.Conversation, error)
	IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error)
	CreateMessage(ctx context.Context, message *domain.Message) error
	ListMessages(ctx context.Context, conversationID int64) ([]domain.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID int64) error
	ListUserConversations(ctx context.Context, userID int64) ([]domain.ConversationDetails, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

// CreateConversation inserts the conversation and its participants in one
// transaction.
func (r *messageRepository) CreateConversation(ctx context.Context, propertyID int64, participantIDs []int64) (*domain.Conversation, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var conversation domain.Conversation
	const insertConversation = `
        INSERT INTO conversations (property_id)
        VALUES ($1)
        RETURNING id, property_id, created_at`
	if err := tx.QueryRow(ctx, insertConversation, propertyID).Scan(
		&conversation.ID,
		&conversation.PropertyID,
		&conversation.CreatedAt,
	); err != nil {
		return nil, err
	}

	const insertParticipant = `
        INSERT INTO conversation_participants (conversation_id, user_id)
        VALUES ($1,$2)`
	for _, userID := range participantIDs {
		if _, err := tx.Exec(ctx, insertParticipant, conversation.ID, userID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *messageRepository) IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM conversation_participants
            WHERE conversation_id=$1 AND user_id=$2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, conversationID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *messageRepository) CreateMessage(ctx context.Context, message *domain.Message) error {
	const query = `
        INSERT INTO messages (conversation_id, sender_id, content, read)
        VALUES ($1,$2,$3,false)
        RETURNING id, read, created_at`

	return r.pool.QueryRow(ctx, query,
		message.ConversationID,
		message.SenderID,
		message.Content,
	).Scan(&message.ID, &message.Read, &message.CreatedAt)
}

func (r *messageRepository) ListMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	const query = `
        SELECT id, conversation_id, sender_id, content, read, created_at
        FROM messages WHERE conversation_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.SenderID,
			&message.Content,
			&message.Read,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

// MarkRead flags every message in the conversation not sent by the reader.
func (r *messageRepository) MarkRead(ctx context.Context, conversationID, readerID int64) error {
	const query = `
        UPDATE messages SET read=true
        WHERE conversation_id=$1 AND sender_id<>$2 AND read=false`

	_, err := r.pool.Exec(ctx, query, conversationID, readerID)
	return err
}

func (r *messageRepository) ListUserConversations(ctx context.Context, userID int64) ([]domain.ConversationDetails, error) {
	const query = `
        SELECT c.id, c.property_id, p.title,
               COUNT(m.id) FILTER (WHERE m.read=false AND m.sender_id<>$1) AS unread_count,
               c.created_at
        FROM conversations c
        JOIN conversation_participants cp ON cp.conversation_id = c.id
        JOIN properties p ON p.id = c.property_id
        LEFT JOIN messages m ON m.conversation_id = c.id
        WHERE cp.user_id = $1
        GROUP BY c.id, c.property_id, p.title, c.created_at
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversations := make([]domain.ConversationDetails, 0)
	for rows.Next() {
		var details domain.ConversationDetails
		if err := rows.Scan(
			&details.ID,
			&details.PropertyID,
			&details.PropertyTitle,
			&details.UnreadCount,
			&details.CreatedAt,
		); err != nil {
			return nil, err
		}
		conversations = append(conversations, details)
	}
	return conversations, rows.Err()
}
