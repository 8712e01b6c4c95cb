// Package repository contains hand-maintained test doubles for the
// persistence interfaces.
package repository

import (
	"context"

	"inndoor/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

// NewMockTransactionManager creates a new mock bound to the test lifecycle.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	// A function return value stands in for the real transaction body,
	// letting tests run fn against a mock factory and surface its error.
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

var _ repository.RepositoryFactory = (*MockRepositoryFactory)(nil)

// NewMockRepositoryFactory creates a new mock bound to the test lifecycle.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	args := m.Called()

	return args.Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) NewPropertyRepository() repository.PropertyRepository {
	args := m.Called()

	return args.Get(0).(repository.PropertyRepository)
}

func (m *MockRepositoryFactory) NewInspectionRepository() repository.InspectionRepository {
	args := m.Called()

	return args.Get(0).(repository.InspectionRepository)
}

func (m *MockRepositoryFactory) NewDealRepository() repository.DealRepository {
	args := m.Called()

	return args.Get(0).(repository.DealRepository)
}

func (m *MockRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	args := m.Called()

	return args.Get(0).(repository.NotificationRepository)
}

func (m *MockRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	args := m.Called()

	return args.Get(0).(repository.RefreshTokenRepository)
}
