package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// PropertyRepository defines persistence access for listings.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	AddImage(ctx context.Context, image *domain.PropertyImage) error
	ListImages(ctx context.Context, propertyID int64) ([]domain.PropertyImage, error)
}

type propertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository returns a Postgres-backed implementation.
func NewPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &propertyRepository{pool: pool}
}

const propertyColumns = `id, title, price, description, location, bedrooms, bathrooms,
        square_feet, property_type, listing_type, status, owner_id, agent_id, created_at, updated_at`

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	const query = `
        INSERT INTO properties (
            title, price, description, location, bedrooms, bathrooms, square_feet,
            property_type, listing_type, status, owner_id, agent_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		property.Title,
		property.Price,
		property.Description,
		property.Location,
		property.Bedrooms,
		property.Bathrooms,
		property.SquareFeet,
		property.PropertyType,
		property.ListingType,
		property.Status,
		property.OwnerID,
		property.AgentID,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	const query = `SELECT ` + propertyColumns + ` FROM properties WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	const query = `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		property, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *property)
	}
	return properties, rows.Err()
}

func (r *propertyRepository) AddImage(ctx context.Context, image *domain.PropertyImage) error {
	const query = `
        INSERT INTO property_images (property_id, image_url, is_primary)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		image.PropertyID,
		image.ImageURL,
		image.IsPrimary,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *propertyRepository) ListImages(ctx context.Context, propertyID int64) ([]domain.PropertyImage, error) {
	const query = `
        SELECT id, property_id, image_url, is_primary, created_at
        FROM property_images WHERE property_id=$1 ORDER BY is_primary DESC, created_at`

	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]domain.PropertyImage, 0)
	for rows.Next() {
		var image domain.PropertyImage
		if err := rows.Scan(
			&image.ID,
			&image.PropertyID,
			&image.ImageURL,
			&image.IsPrimary,
			&image.CreatedAt,
		); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (r *propertyRepository) scanOne(row pgx.Row) (*domain.Property, error) {
	var property domain.Property
	if err := row.Scan(
		&property.ID,
		&property.Title,
		&property.Price,
		&property.Description,
		&property.Location,
		&property.Bedrooms,
		&property.Bathrooms,
		&property.SquareFeet,
		&property.PropertyType,
		&property.ListingType,
		&property.Status,
		&property.OwnerID,
		&property.AgentID,
		&property.CreatedAt,
		&property.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &property, nil
}
