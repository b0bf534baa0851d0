package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/events"
	"github.com/spec-kit/realestate-service/internal/repository"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// MessageService handles conversations between users about listings.
type MessageService struct {
	messages   repository.MessageRepository
	dispatcher events.Dispatcher
}

// NewMessageService builds the service.
func NewMessageService(messages repository.MessageRepository, dispatcher events.Dispatcher) *MessageService {
	return &MessageService{messages: messages, dispatcher: dispatcher}
}

// CreateConversation opens a conversation about a property. The creator is
// always a participant.
func (s *MessageService) CreateConversation(ctx context.Context, propertyID int64, participantIDs []int64, creatorID int64) (*domain.Conversation, error) {
	if propertyID == 0 {
		return nil, apperrors.NewValidationError("Property id required")
	}

	seen := map[int64]struct{}{creatorID: {}}
	participants := []int64{creatorID}
	for _, id := range participantIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		participants = append(participants, id)
	}

	return s.messages.CreateConversation(ctx, propertyID, participants)
}

// SendMessage appends a message from the authenticated sender. Non-participants
// are rejected.
func (s *MessageService) SendMessage(ctx context.Context, conversationID, senderID int64, content string) (*domain.Message, error) {
	if content == "" {
		return nil, apperrors.NewValidationError("Message content required")
	}

	ok, err := s.messages.IsParticipant(ctx, conversationID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbidden("Not a conversation participant")
	}

	message := &domain.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.messages.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		preview := content
		if len(preview) > 80 {
			preview = preview[:80]
		}
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMessageSent,
			Timestamp: time.Now(),
			Payload: events.MessageSentPayload{
				ConversationID: conversationID,
				MessageID:      message.ID,
				SenderID:       senderID,
				BodyPreview:    preview,
			},
		})
	}
	return message, nil
}

// ListMessages returns the conversation history for a participant and
// marks the returned messages as read for them.
func (s *MessageService) ListMessages(ctx context.Context, conversationID, readerID int64) ([]domain.Message, error) {
	ok, err := s.messages.IsParticipant(ctx, conversationID, readerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbidden("Not a conversation participant")
	}

	messages, err := s.messages.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkRead(ctx, conversationID, readerID); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListUserConversations returns the conversation overview for a user.
func (s *MessageService) ListUserConversations(ctx context.Context, userID int64) ([]domain.ConversationDetails, error) {
	return s.messages.ListUserConversations(ctx, userID)
}
