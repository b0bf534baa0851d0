package dto

import (
	"time"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// RegisterUserRequest payload for account creation.
type RegisterUserRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
}

// UserResponse is the public view of an account. The password hash and
// reset token fields are never serialized.
type UserResponse struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Phone           *string   `json:"phone,omitempty"`
	Role            string    `json:"role"`
	BusinessRole    string    `json:"business_role"`
	Verified        bool      `json:"verified"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		Phone:           user.Phone,
		Role:            string(user.Role),
		BusinessRole:    string(user.BusinessRole),
		Verified:        user.Verified,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
