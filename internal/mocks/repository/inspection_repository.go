package repository

import (
	"context"

	"inndoor/internal/domain/entity"
	"inndoor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInspectionRepository is a mock implementation of repository.InspectionRepository.
type MockInspectionRepository struct {
	mock.Mock
}

var _ repository.InspectionRepository = (*MockInspectionRepository)(nil)

// NewMockInspectionRepository creates a new mock bound to the test lifecycle.
func NewMockInspectionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInspectionRepository {
	m := &MockInspectionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockInspectionRepository) Create(ctx context.Context, inspection *entity.Inspection) error {
	args := m.Called(ctx, inspection)

	return args.Error(0)
}

func (m *MockInspectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inspection, error) {
	args := m.Called(ctx, id)
	if inspection, ok := args.Get(0).(*entity.Inspection); ok {
		return inspection, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockInspectionRepository) List(ctx context.Context, filter *repository.InspectionFilter) ([]*entity.Inspection, error) {
	args := m.Called(ctx, filter)
	if inspections, ok := args.Get(0).([]*entity.Inspection); ok {
		return inspections, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockInspectionRepository) Update(ctx context.Context, inspection *entity.Inspection) error {
	args := m.Called(ctx, inspection)

	return args.Error(0)
}

func (m *MockInspectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockDealRepository is a mock implementation of repository.DealRepository.
type MockDealRepository struct {
	mock.Mock
}

var _ repository.DealRepository = (*MockDealRepository)(nil)

// NewMockDealRepository creates a new mock bound to the test lifecycle.
func NewMockDealRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDealRepository {
	m := &MockDealRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	args := m.Called(ctx, deal)

	return args.Error(0)
}

func (m *MockDealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	args := m.Called(ctx, id)
	if deal, ok := args.Get(0).(*entity.Deal); ok {
		return deal, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDealRepository) List(ctx context.Context, filter *repository.DealFilter) ([]*entity.Deal, error) {
	args := m.Called(ctx, filter)
	if deals, ok := args.Get(0).([]*entity.Deal); ok {
		return deals, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	args := m.Called(ctx, deal)

	return args.Error(0)
}
