package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/customer/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

type customerUseCase struct {
	txManager    database.TxManager
	permissions  PermissionSource
	customerRepo CustomerRepository
	logger       *slog.Logger
}

// List derives the permission first; on absence it returns before the accessor is reached.
func (c *customerUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
	params domain.ListCustomersParams,
) ([]*domain.Customer, error) {
	perm, err := c.permissions.ProjectPermission(ctx, principal)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "listing customers",
		slog.String("principal_id", principal.ID().String()),
		slog.String("scope", perm.String()),
	)

	return c.customerRepo.List(ctx, perm, params)
}

// Create stores a customer after checking the target project is inside the permission.
func (c *customerUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *domain.CreateCustomerInput,
) (*domain.Customer, error) {
	perm, err := c.permissions.ProjectPermission(ctx, principal)
	if err != nil {
		return nil, err
	}
	if !perm.Allows(input.ProjectID) {
		return nil, apperrors.Wrap(authDomain.ErrNoProjectPermission, "project outside permission")
	}

	customer, err := domain.NewCustomer(input)
	if err != nil {
		return nil, err
	}

	err = c.txManager.WithTx(ctx, func(ctx context.Context) error {
		return c.customerRepo.Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(
	txManager database.TxManager,
	permissions PermissionSource,
	customerRepo CustomerRepository,
	logger *slog.Logger,
) CustomerUseCase {
	return &customerUseCase{
		txManager:    txManager,
		permissions:  permissions,
		customerRepo: customerRepo,
		logger:       logger,
	}
}
