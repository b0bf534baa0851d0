package dto

import (
	"time"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// CreatePropertyRequest payload for listing creation.
type CreatePropertyRequest struct {
	Title        string   `json:"title"`
	Price        float64  `json:"price"`
	Description  *string  `json:"description,omitempty"`
	Location     string   `json:"location"`
	Bedrooms     *int64   `json:"bedrooms,omitempty"`
	Bathrooms    *int64   `json:"bathrooms,omitempty"`
	SquareFeet   *float64 `json:"square_feet,omitempty"`
	PropertyType string   `json:"property_type"`
	ListingType  string   `json:"listing_type"`
	Status       string   `json:"status,omitempty"`
	OwnerID      int64    `json:"owner_id,omitempty"`
}

// AddPropertyImageRequest payload for attaching an image to a listing.
type AddPropertyImageRequest struct {
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// PropertyImageResponse is the public view of a listing image.
type PropertyImageResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	ImageURL   string    `json:"image_url"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewPropertyImageResponse maps a domain image to its public view.
func NewPropertyImageResponse(image *domain.PropertyImage) PropertyImageResponse {
	return PropertyImageResponse{
		ID:         image.ID,
		PropertyID: image.PropertyID,
		ImageURL:   image.ImageURL,
		IsPrimary:  image.IsPrimary,
		CreatedAt:  image.CreatedAt,
	}
}

// PropertyResponse is the public view of a listing.
type PropertyResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	Description  *string   `json:"description,omitempty"`
	Location     string    `json:"location"`
	Bedrooms     *int64    `json:"bedrooms,omitempty"`
	Bathrooms    *int64    `json:"bathrooms,omitempty"`
	SquareFeet   *float64  `json:"square_feet,omitempty"`
	PropertyType string    `json:"property_type"`
	ListingType  string    `json:"listing_type"`
	Status       string    `json:"status"`
	OwnerID      int64     `json:"owner_id"`
	AgentID      *int64    `json:"agent_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewPropertyResponse maps a domain property to its public view.
func NewPropertyResponse(property *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           property.ID,
		Title:        property.Title,
		Price:        property.Price,
		Description:  property.Description,
		Location:     property.Location,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		SquareFeet:   property.SquareFeet,
		PropertyType: string(property.PropertyType),
		ListingType:  string(property.ListingType),
		Status:       string(property.Status),
		OwnerID:      property.OwnerID,
		AgentID:      property.AgentID,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
	}
}
