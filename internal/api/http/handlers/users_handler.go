package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/dto"
	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/service"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /api/users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	businessRole, ok := domain.ParseBusinessRole(req.Role)
	if !ok {
		return apperrors.NewValidationError("Unknown role")
	}

	user, err := h.users.Register(c.Context(), service.RegisterUserInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		Phone:        req.Phone,
		BusinessRole: businessRole,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// Get handles GET /api/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("Invalid user id")
	}

	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// ListByRole handles GET /api/users/by-role/:role.
func (h *UsersHandler) ListByRole(c *fiber.Ctx) error {
	role, ok := domain.ParseBusinessRole(c.Params("role"))
	if !ok {
		return apperrors.NewValidationError("Unknown role")
	}

	users, err := h.users.ListByBusinessRole(c.Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(userResponses(users))
}

// ListAll handles GET /api/admin/users; route access is gated on the
// admin role by the router.
func (h *UsersHandler) ListAll(c *fiber.Ctx) error {
	users, err := h.users.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(userResponses(users))
}

func userResponses(users []domain.User) []dto.UserResponse {
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserResponse(&users[i]))
	}
	return resp
}
