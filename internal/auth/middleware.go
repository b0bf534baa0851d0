package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/domain"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

const identityKey = "auth_identity"

// Identity is the request-scoped authenticated caller. It lives only for
// the request and is never persisted.
type Identity struct {
	UserID int64
	Role   domain.Role
}

// AuthMiddleware validates bearer tokens and attaches identities.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Validation is pure
// computation over the signing secret; the user record is not reloaded.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Invalid token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return apperrors.NewUnauthorized("Invalid token")
	}

	c.Locals(identityKey, &Identity{UserID: userID, Role: domain.Role(claims.Role)})
	return c.Next()
}

// RequireRole gates a route on a minimum authorization role. Tokens whose
// role claim is not a known authorization role are rejected outright.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Authentication required")
		}
		if !identity.Role.Valid() {
			return apperrors.NewForbidden("Invalid role")
		}
		if !identity.Role.AtLeast(required) {
			return apperrors.NewForbidden("Insufficient permissions")
		}
		return c.Next()
	}
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
