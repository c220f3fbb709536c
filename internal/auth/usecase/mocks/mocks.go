// Package mocks provides testify mocks for the auth use case interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/custody/internal/auth/domain"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase.
type MockAuthUseCase struct {
	mock.Mock
}

// NewMockAuthUseCase creates a MockAuthUseCase that asserts its expectations on cleanup.
func NewMockAuthUseCase(t *testing.T) *MockAuthUseCase {
	m := &MockAuthUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

func (m *MockAuthUseCase) ProjectPermission(
	ctx context.Context,
	principal *authDomain.Principal,
) (*authDomain.ProjectPermission, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.ProjectPermission), args.Error(1)
}

func (m *MockAuthUseCase) Profile(
	ctx context.Context,
	principal *authDomain.Principal,
) (*authDomain.Profile, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Profile), args.Error(1)
}

func (m *MockAuthUseCase) CreateProject(
	ctx context.Context,
	name string,
	managerID uuid.UUID,
) (*authDomain.Project, error) {
	args := m.Called(ctx, name, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Project), args.Error(1)
}
