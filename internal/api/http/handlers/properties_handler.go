package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/dto"
	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/service"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// PropertiesHandler exposes listing endpoints.
type PropertiesHandler struct {
	properties *service.PropertyService
}

// NewPropertiesHandler constructs handler.
func NewPropertiesHandler(propertyService *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{properties: propertyService}
}

// Create handles POST /api/properties; the route requires the agent role.
func (h *PropertiesHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	property := &domain.Property{
		Title:        req.Title,
		Price:        req.Price,
		Description:  req.Description,
		Location:     req.Location,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		PropertyType: domain.PropertyType(req.PropertyType),
		ListingType:  domain.ListingType(req.ListingType),
		Status:       domain.PropertyStatus(req.Status),
		OwnerID:      req.OwnerID,
	}

	created, err := h.properties.Create(c.Context(), property, identity.UserID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPropertyResponse(created))
}

// List handles GET /api/properties.
func (h *PropertiesHandler) List(c *fiber.Ctx) error {
	properties, err := h.properties.List(c.Context())
	if err != nil {
		return err
	}

	resp := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		resp = append(resp, dto.NewPropertyResponse(&properties[i]))
	}
	return c.JSON(resp)
}

// AddImage handles POST /api/properties/:id/images; the route requires the
// agent role.
func (h *PropertiesHandler) AddImage(c *fiber.Ctx) error {
	propertyID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("Invalid property id")
	}

	var req dto.AddPropertyImageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	image := &domain.PropertyImage{
		PropertyID: propertyID,
		ImageURL:   req.ImageURL,
		IsPrimary:  req.IsPrimary,
	}
	created, err := h.properties.AddImage(c.Context(), image)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPropertyImageResponse(created))
}

// ListImages handles GET /api/properties/:id/images.
func (h *PropertiesHandler) ListImages(c *fiber.Ctx) error {
	propertyID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("Invalid property id")
	}

	images, err := h.properties.ListImages(c.Context(), propertyID)
	if err != nil {
		return err
	}

	resp := make([]dto.PropertyImageResponse, 0, len(images))
	for i := range images {
		resp = append(resp, dto.NewPropertyImageResponse(&images[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /api/properties/:id.
func (h *PropertiesHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("Invalid property id")
	}

	property, err := h.properties.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPropertyResponse(property))
}
