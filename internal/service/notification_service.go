package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/config"
	"github.com/spec-kit/realestate-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Actual email/webhook transports are stubbed; this is the out-of-band
// delivery point for reset tokens and activity notices.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
	n.dispatcher.Subscribe(events.EventPropertyCreated, n.handlePropertyCreated)
	n.dispatcher.Subscribe(events.EventMessageSent, n.handleMessageSent)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	// The reset token reaches the account holder only through this path.
	n.logger.Info("PasswordResetRequested", zap.String("event_id", event.ID))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePropertyCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("PropertyCreated", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleMessageSent(ctx context.Context, event events.Event) error {
	n.logger.Info("MessageSent", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	n.logger.Debug("email notification stub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)),
	)
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if n.cfg.WebhookURL == "" {
		return
	}
	n.logger.Debug("webhook notification stub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)),
	)
}
