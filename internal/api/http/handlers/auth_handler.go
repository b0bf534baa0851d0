package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/dto"
	"github.com/spec-kit/realestate-service/internal/service"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// AuthHandler exposes login, refresh and password reset endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Email and password required")
	}

	user, pair, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserResponse(user),
	})
}

// Refresh handles POST /api/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Token == "" {
		return apperrors.NewValidationError("Token required")
	}

	user, pair, err := h.auth.Refresh(c.Context(), req.Token)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserResponse(user),
	})
}

// RequestPasswordReset handles POST /api/password-reset. The response is
// uniform whether or not the email exists.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Email == "" {
		return apperrors.NewValidationError("Email required")
	}

	if err := h.auth.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// ConfirmPasswordReset handles POST /api/password-reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Token == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("Token and new password required")
	}

	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}
