package repository

import (
	"context"

	"inndoor/internal/domain/entity"
	"inndoor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

var _ repository.ReviewRepository = (*MockReviewRepository)(nil)

// NewMockReviewRepository creates a new mock bound to the test lifecycle.
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if review, ok := args.Get(0).(*entity.Review); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, filter *repository.ReviewFilter) ([]*entity.Review, error) {
	args := m.Called(ctx, filter)
	if reviews, ok := args.Get(0).([]*entity.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockMessageRepository is a mock implementation of repository.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

var _ repository.MessageRepository = (*MockMessageRepository)(nil)

// NewMockMessageRepository creates a new mock bound to the test lifecycle.
func NewMockMessageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	args := m.Called(ctx, id)
	if message, ok := args.Get(0).(*entity.Message); ok {
		return message, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) ListForAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if messages, ok := args.Get(0).([]*entity.Message); ok {
		return messages, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

var _ repository.NotificationRepository = (*MockNotificationRepository)(nil)

// NewMockNotificationRepository creates a new mock bound to the test lifecycle.
func NewMockNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	args := m.Called(ctx, id)
	if notification, ok := args.Get(0).(*entity.Notification); ok {
		return notification, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNotificationRepository) ListForAccount(ctx context.Context, accountID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	args := m.Called(ctx, accountID, unreadOnly, limit, offset)
	if notifications, ok := args.Get(0).([]*entity.Notification); ok {
		return notifications, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockSavedPropertyRepository is a mock implementation of repository.SavedPropertyRepository.
type MockSavedPropertyRepository struct {
	mock.Mock
}

var _ repository.SavedPropertyRepository = (*MockSavedPropertyRepository)(nil)

// NewMockSavedPropertyRepository creates a new mock bound to the test lifecycle.
func NewMockSavedPropertyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSavedPropertyRepository {
	m := &MockSavedPropertyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSavedPropertyRepository) Create(ctx context.Context, saved *entity.SavedProperty) error {
	args := m.Called(ctx, saved)

	return args.Error(0)
}

func (m *MockSavedPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedProperty, error) {
	args := m.Called(ctx, id)
	if saved, ok := args.Get(0).(*entity.SavedProperty); ok {
		return saved, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSavedPropertyRepository) ListForAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.SavedProperty, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if saved, ok := args.Get(0).([]*entity.SavedProperty); ok {
		return saved, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSavedPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
