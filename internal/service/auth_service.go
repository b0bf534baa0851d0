package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/config"
	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/events"
	"github.com/spec-kit/realestate-service/internal/repository"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// TokenPair bundles a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService coordinates login, token refresh and password reset flows.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	resetTTL   time.Duration
}

// NewAuthService builds the service from injected configuration.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
		resetTTL:   cfg.ResetTokenTTL(),
	}
}

// Login authenticates a user by email and password and issues a token pair.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("Invalid credentials")
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// reloaded so the new tokens carry the role currently in storage, not the
// role at the old token's issuance.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error) {
	claims, err := s.tokens.ParseToken(refreshToken)
	if err != nil {
		return nil, nil, apperrors.NewUnauthorized("Invalid refresh token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, nil, apperrors.NewUnauthorized("Invalid refresh token")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("User not found")
		}
		return nil, nil, err
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RequestPasswordReset stores a one-time reset token on the account. The
// outcome is identical whether or not the email exists, so account
// existence never leaks. Delivery happens through the notification
// subscribers.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	token := uuid.NewString()
	expiresAt := time.Now().Add(s.resetTTL)

	if err := s.users.SetResetToken(ctx, email, token, expiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	s.publish(ctx, events.EventPasswordResetRequested, events.PasswordResetRequestedPayload{
		Email:      email,
		ResetToken: token,
		ExpiresAt:  expiresAt,
	})
	return nil
}

// ConfirmPasswordReset consumes a reset token. The token match, expiry
// check, password write and token clear happen in one conditional store
// update, so a token can never be used twice.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewValidationError("Password hashing failed")
	}

	if err := s.users.UpdatePasswordAndClearReset(ctx, token, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("Invalid or expired reset token")
		}
		return err
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) issuePair(user *domain.User) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
