package service

import (
	"context"
	"errors"
	"strings"
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

// RegisterUserInput carries the fields for account creation.
type RegisterUserInput struct {
	Email        string
	Password     string
	FullName     string
	Phone        *string
	BusinessRole domain.BusinessRole
}

// UserService handles account creation and lookups.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: cfg.BcryptCost}
}

// Register creates a new, unverified account. New accounts always start at
// the base authorization level; elevated roles are assigned out of band.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("Valid email required")
	}
	if input.Password == "" {
		return nil, apperrors.NewValidationError("Password required")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("Email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewValidationError("Password hashing failed")
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         domain.RoleUser,
		BusinessRole: input.BusinessRole,
		Verified:     false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			Timestamp: time.Now(),
			Payload: events.UserRegisteredPayload{
				UserID:   user.ID,
				Email:    user.Email,
				FullName: user.FullName,
			},
		})
	}
	return user, nil
}

// GetByID fetches a single account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// ListByBusinessRole lists accounts by their market classification.
func (s *UserService) ListByBusinessRole(ctx context.Context, role domain.BusinessRole) ([]domain.User, error) {
	return s.users.ListByBusinessRole(ctx, role)
}

// ListAll lists every account; reserved for administrators.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}
