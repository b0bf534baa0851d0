package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/dto"
	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/service"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// MessagesHandler exposes conversation endpoints.
type MessagesHandler struct {
	messages *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{messages: messageService}
}

// CreateConversation handles POST /api/conversations.
func (h *MessagesHandler) CreateConversation(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	conversation, err := h.messages.CreateConversation(c.Context(), req.PropertyID, req.ParticipantIDs, identity.UserID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ConversationResponse{
		ID:         conversation.ID,
		PropertyID: conversation.PropertyID,
		CreatedAt:  conversation.CreatedAt,
	})
}

// SendMessage handles POST /api/conversations/:id/messages. The sender is
// always the authenticated identity.
func (h *MessagesHandler) SendMessage(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	conversationID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("Invalid conversation id")
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	message, err := h.messages.SendMessage(c.Context(), conversationID, identity.UserID, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewMessageResponse(message))
}

// ListMessages handles GET /api/conversations/:id/messages.
func (h *MessagesHandler) ListMessages(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	conversationID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("Invalid conversation id")
	}

	messages, err := h.messages.ListMessages(c.Context(), conversationID, identity.UserID)
	if err != nil {
		return err
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, dto.NewMessageResponse(&messages[i]))
	}
	return c.JSON(resp)
}

// ListUserConversations handles GET /api/users/:id/conversations. Users can
// only read their own conversation list.
func (h *MessagesHandler) ListUserConversations(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("Invalid user id")
	}
	if userID != identity.UserID {
		return apperrors.NewForbidden("Insufficient permissions")
	}

	conversations, err := h.messages.ListUserConversations(c.Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]dto.ConversationDetailsResponse, 0, len(conversations))
	for _, details := range conversations {
		resp = append(resp, dto.ConversationDetailsResponse{
			ID:            details.ID,
			PropertyID:    details.PropertyID,
			PropertyTitle: details.PropertyTitle,
			UnreadCount:   details.UnreadCount,
			CreatedAt:     details.CreatedAt,
		})
	}
	return c.JSON(resp)
}
