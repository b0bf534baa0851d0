package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/events"
	"github.com/spec-kit/realestate-service/internal/repository"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

const (
	propertyListCacheKey = "properties:list"
	propertyListCacheTTL = 30 * time.Second
)

// PropertyService handles listing creation and queries with a short-lived
// Redis cache in front of the listing query.
type PropertyService struct {
	properties repository.PropertyRepository
	cache      *redis.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPropertyService builds the service. The cache client may be nil.
func NewPropertyService(properties repository.PropertyRepository, cache *redis.Client, dispatcher events.Dispatcher, logger *zap.Logger) *PropertyService {
	return &PropertyService{properties: properties, cache: cache, dispatcher: dispatcher, logger: logger}
}

// Create inserts a listing on behalf of the acting agent and invalidates
// the listing cache.
func (s *PropertyService) Create(ctx context.Context, property *domain.Property, agentID int64) (*domain.Property, error) {
	if property.Title == "" || property.Location == "" {
		return nil, apperrors.NewValidationError("Title and location required")
	}
	if property.Status == "" {
		property.Status = domain.PropertyStatusActive
	}
	if property.AgentID == nil {
		property.AgentID = &agentID
	}
	if property.OwnerID == 0 {
		property.OwnerID = agentID
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPropertyCreated,
			Timestamp: time.Now(),
			Payload: events.PropertyCreatedPayload{
				PropertyID: property.ID,
				Title:      property.Title,
				Price:      property.Price,
				AgentID:    agentID,
			},
		})
	}
	return property, nil
}

// GetByID fetches a single listing.
func (s *PropertyService) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property")
		}
		return nil, err
	}
	return property, nil
}

// List returns all listings, newest first, served from cache when warm.
func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, propertyListCacheKey).Bytes()
		if err == nil {
			var properties []domain.Property
			if json.Unmarshal(cached, &properties) == nil {
				return properties, nil
			}
		}
	}

	properties, err := s.properties.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(properties); err == nil {
			if err := s.cache.Set(ctx, propertyListCacheKey, encoded, propertyListCacheTTL).Err(); err != nil {
				s.logger.Warn("property list cache write failed", zap.Error(err))
			}
		}
	}
	return properties, nil
}

// AddImage attaches an image to an existing listing.
func (s *PropertyService) AddImage(ctx context.Context, image *domain.PropertyImage) (*domain.PropertyImage, error) {
	if image.ImageURL == "" {
		return nil, apperrors.NewValidationError("Image URL required")
	}
	if _, err := s.properties.GetByID(ctx, image.PropertyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property")
		}
		return nil, err
	}
	if err := s.properties.AddImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListImages returns the images attached to a listing.
func (s *PropertyService) ListImages(ctx context.Context, propertyID int64) ([]domain.PropertyImage, error) {
	return s.properties.ListImages(ctx, propertyID)
}

func (s *PropertyService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, propertyListCacheKey).Err(); err != nil {
		s.logger.Warn("property list cache invalidation failed", zap.Error(err))
	}
}
