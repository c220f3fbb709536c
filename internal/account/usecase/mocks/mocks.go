// Package mocks provides testify mocks for the account use case interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/custody/internal/account/domain"
)

// MockAccountUseCase is a mock implementation of usecase.AccountUseCase.
type MockAccountUseCase struct {
	mock.Mock
}

// NewMockAccountUseCase creates a MockAccountUseCase that asserts its expectations on cleanup.
func NewMockAccountUseCase(t *testing.T) *MockAccountUseCase {
	m := &MockAccountUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountUseCase) Get(ctx context.Context, id string) (domain.AccountView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AccountView), args.Error(1)
}

func (m *MockAccountUseCase) Withdraw(
	ctx context.Context,
	id string,
	amount decimal.Decimal,
) (domain.AccountView, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(domain.AccountView), args.Error(1)
}

func (m *MockAccountUseCase) Open(
	ctx context.Context,
	input *domain.CreateAccountInput,
) (domain.AccountView, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.AccountView), args.Error(1)
}

func (m *MockAccountUseCase) ListEntries(
	ctx context.Context,
	id string,
	offset, limit int,
) ([]domain.Entry, error) {
	args := m.Called(ctx, id, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
