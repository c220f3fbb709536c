// Package mocks provides testify mocks for the customer use case interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/customer/domain"
)

// MockCustomerUseCase is a mock implementation of usecase.CustomerUseCase.
type MockCustomerUseCase struct {
	mock.Mock
}

// NewMockCustomerUseCase creates a MockCustomerUseCase that asserts its expectations on cleanup.
func NewMockCustomerUseCase(t *testing.T) *MockCustomerUseCase {
	m := &MockCustomerUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
	params domain.ListCustomersParams,
) ([]*domain.Customer, error) {
	args := m.Called(ctx, principal, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *domain.CreateCustomerInput,
) (*domain.Customer, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockCustomerRepository is a mock implementation of usecase.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a MockCustomerRepository that asserts its expectations on cleanup.
func NewMockCustomerRepository(t *testing.T) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(
	ctx context.Context,
	perm *authDomain.ProjectPermission,
	params domain.ListCustomersParams,
) ([]*domain.Customer, error) {
	args := m.Called(ctx, perm, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}
