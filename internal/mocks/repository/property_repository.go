package repository

import (
	"context"

	"inndoor/internal/domain/entity"
	"inndoor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of repository.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

var _ repository.PropertyRepository = (*MockPropertyRepository)(nil)

// NewMockPropertyRepository creates a new mock bound to the test lifecycle.
func NewMockPropertyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPropertyRepository {
	m := &MockPropertyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	args := m.Called(ctx, property)

	return args.Error(0)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if property, ok := args.Get(0).(*entity.Property); ok {
		return property, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPropertyRepository) List(ctx context.Context, filter *repository.PropertyFilter) ([]*entity.Property, error) {
	args := m.Called(ctx, filter)
	if properties, ok := args.Get(0).([]*entity.Property); ok {
		return properties, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	args := m.Called(ctx, property)

	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockPropertyRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)

	return args.Int(0), args.Error(1)
}

func (m *MockPropertyRepository) AddImage(ctx context.Context, image *entity.PropertyImage) error {
	args := m.Called(ctx, image)

	return args.Error(0)
}

func (m *MockPropertyRepository) FindImage(ctx context.Context, imageID uuid.UUID) (*entity.PropertyImage, error) {
	args := m.Called(ctx, imageID)
	if image, ok := args.Get(0).(*entity.PropertyImage); ok {
		return image, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPropertyRepository) ListImages(ctx context.Context, propertyID uuid.UUID) ([]*entity.PropertyImage, error) {
	args := m.Called(ctx, propertyID)
	if images, ok := args.Get(0).([]*entity.PropertyImage); ok {
		return images, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPropertyRepository) SetPrimaryImage(ctx context.Context, propertyID, imageID uuid.UUID) error {
	args := m.Called(ctx, propertyID, imageID)

	return args.Error(0)
}

func (m *MockPropertyRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	args := m.Called(ctx, imageID)

	return args.Error(0)
}
