package dto

import (
	"time"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// CreateConversationRequest payload for opening a conversation.
type CreateConversationRequest struct {
	PropertyID     int64   `json:"property_id"`
	ParticipantIDs []int64 `json:"participant_ids"`
}

// SendMessageRequest payload for sending a message.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// ConversationResponse is the public view of a conversation.
type ConversationResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// MessageResponse is the public view of a message.
type MessageResponse struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationDetailsResponse is the per-user conversation overview entry.
type ConversationDetailsResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	UnreadCount   int64     `json:"unread_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewMessageResponse maps a domain message to its public view.
func NewMessageResponse(message *domain.Message) MessageResponse {
	return MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		Read:           message.Read,
		CreatedAt:      message.CreatedAt,
	}
}
