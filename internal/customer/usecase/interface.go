// Package usecase serves customer reads and writes scoped by the caller's project permission.
package usecase

import (
	"context"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/customer/domain"
)

// CustomerRepository is the customer accessor. Reads take a project permission, never a raw
// project id.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	List(
		ctx context.Context,
		perm *authDomain.ProjectPermission,
		params domain.ListCustomersParams,
	) ([]*domain.Customer, error)
}

// PermissionSource derives a principal's project permission.
// auth/usecase.AuthUseCase satisfies it.
type PermissionSource interface {
	ProjectPermission(ctx context.Context, principal *authDomain.Principal) (*authDomain.ProjectPermission, error)
}

// CustomerUseCase defines the customer business operations.
type CustomerUseCase interface {
	// List returns the customers visible to principal. A principal without a project permission
	// gets ErrNoProjectPermission, never an empty list.
	List(
		ctx context.Context,
		principal *authDomain.Principal,
		params domain.ListCustomersParams,
	) ([]*domain.Customer, error)

	// Create registers a customer in a project the principal is permitted to see.
	Create(
		ctx context.Context,
		principal *authDomain.Principal,
		input *domain.CreateCustomerInput,
	) (*domain.Customer, error)
}
