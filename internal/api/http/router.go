package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/http/handlers"
	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Properties     *handlers.PropertiesHandler
	Messages       *handlers.MessagesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// Public auth routes.
	api.Post("/login", cfg.Auth.Login)
	api.Post("/refresh", cfg.Auth.Refresh)
	api.Post("/password-reset", cfg.Auth.RequestPasswordReset)
	api.Post("/password-reset/confirm", cfg.Auth.ConfirmPasswordReset)

	// Public user and property routes.
	api.Post("/users", cfg.Users.Register)
	api.Get("/users/by-role/:role", cfg.Users.ListByRole)
	api.Get("/users/:id", cfg.Users.Get)
	api.Get("/properties", cfg.Properties.List)
	api.Get("/properties/:id", cfg.Properties.Get)
	api.Get("/properties/:id/images", cfg.Properties.ListImages)

	// Role-gated routes.
	api.Get("/admin/users", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Users.ListAll)
	api.Post("/properties", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAgent), cfg.Properties.Create)
	api.Post("/properties/:id/images", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAgent), cfg.Properties.AddImage)

	// Messaging requires authentication only.
	api.Post("/conversations", cfg.AuthMiddleware.Handle, cfg.Messages.CreateConversation)
	api.Post("/conversations/:id/messages", cfg.AuthMiddleware.Handle, cfg.Messages.SendMessage)
	api.Get("/conversations/:id/messages", cfg.AuthMiddleware.Handle, cfg.Messages.ListMessages)
	api.Get("/users/:id/conversations", cfg.AuthMiddleware.Handle, cfg.Messages.ListUserConversations)
}
