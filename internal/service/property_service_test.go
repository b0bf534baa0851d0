package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/domain"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

type fakePropertyRepo struct {
	mu         sync.Mutex
	nextID     int64
	properties map[int64]*domain.Property
	listCalls  int
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{nextID: 1, properties: make(map[int64]*domain.Property)}
}

func (r *fakePropertyRepo) Create(_ context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property.ID = r.nextID
	r.nextID++
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt
	clone := *property
	r.properties[property.ID] = &clone
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *property
	return &clone, nil
}

func (r *fakePropertyRepo) List(_ context.Context) ([]domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	properties := make([]domain.Property, 0, len(r.properties))
	for _, property := range r.properties {
		properties = append(properties, *property)
	}
	return properties, nil
}

func (r *fakePropertyRepo) AddImage(context.Context, *domain.PropertyImage) error { return nil }

func (r *fakePropertyRepo) ListImages(context.Context, int64) ([]domain.PropertyImage, error) {
	return nil, nil
}

func TestPropertyCreateDefaults(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := NewPropertyService(repo, nil, nil, zap.NewNop())

	created, err := svc.Create(context.Background(), &domain.Property{
		Title:        "Sunny flat",
		Price:        250000,
		Location:     "Lisbon",
		PropertyType: domain.PropertyTypeApartment,
		ListingType:  domain.ListingTypeSale,
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, domain.PropertyStatusActive, created.Status)
	require.NotNil(t, created.AgentID)
	assert.Equal(t, int64(7), *created.AgentID)
	assert.Equal(t, int64(7), created.OwnerID)
}

func TestPropertyCreateValidation(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := NewPropertyService(repo, nil, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), &domain.Property{Price: 100}, 7)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestPropertyGetNotFound(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := NewPropertyService(repo, nil, nil, zap.NewNop())

	_, err := svc.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestPropertyListWithoutCacheHitsRepo(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := NewPropertyService(repo, nil, nil, zap.NewNop())

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}
