package domain

import "time"

// Conversation groups messages exchanged about a single property.
type Conversation struct {
	ID         int64
	PropertyID int64
	CreatedAt  time.Time
}

// Message is a single message inside a conversation.
type Message struct {
	ID             int64
	ConversationID int64
	SenderID       int64
	Content        string
	Read           bool
	CreatedAt      time.Time
}

// ConversationDetails is the per-user conversation listing projection,
// including the property title and the count of messages the user has
// not read yet.
type ConversationDetails struct {
	ID            int64
	PropertyID    int64
	PropertyTitle string
	UnreadCount   int64
	CreatedAt     time.Time
}
