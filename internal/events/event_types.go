package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventPropertyCreated        EventType = "property_created"
	EventMessageSent            EventType = "message_sent"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// PasswordResetRequestedPayload carries the reset token for out-of-band
// delivery to the account email.
type PasswordResetRequestedPayload struct {
	Email      string    `json:"email"`
	ResetToken string    `json:"reset_token"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// PropertyCreatedPayload payload.
type PropertyCreatedPayload struct {
	PropertyID int64   `json:"property_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	AgentID    int64   `json:"agent_id"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	ConversationID int64  `json:"conversation_id"`
	MessageID      int64  `json:"message_id"`
	SenderID       int64  `json:"sender_id"`
	BodyPreview    string `json:"body_preview"`
}
