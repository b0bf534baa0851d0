package domain

import "time"

// PropertyType enumerates kinds of listed real estate.
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// ListingType differentiates sale and rental listings.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// PropertyStatus enumerates listing lifecycle states.
type PropertyStatus string

const (
	PropertyStatusActive  PropertyStatus = "active"
	PropertyStatusPending PropertyStatus = "pending"
	PropertyStatusSold    PropertyStatus = "sold"
	PropertyStatusRented  PropertyStatus = "rented"
)

// Property is the aggregate for a real-estate listing.
type Property struct {
	ID           int64
	Title        string
	Price        float64
	Description  *string
	Location     string
	Bedrooms     *int64
	Bathrooms    *int64
	SquareFeet   *float64
	PropertyType PropertyType
	ListingType  ListingType
	Status       PropertyStatus
	OwnerID      int64
	AgentID      *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PropertyImage is an image attached to a listing.
type PropertyImage struct {
	ID         int64
	PropertyID int64
	ImageURL   string
	IsPrimary  bool
	CreatedAt  time.Time
}
