package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/customer/domain"
	apperrors "github.com/allisson/custody/internal/errors"
	"github.com/allisson/custody/internal/metrics"
)

// customerUseCaseWithMetrics decorates CustomerUseCase with metrics instrumentation.
type customerUseCaseWithMetrics struct {
	next    CustomerUseCase
	metrics metrics.BusinessMetrics
}

// NewCustomerUseCaseWithMetrics wraps a CustomerUseCase with metrics recording.
func NewCustomerUseCaseWithMetrics(useCase CustomerUseCase, m metrics.BusinessMetrics) CustomerUseCase {
	return &customerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *customerUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	switch {
	case apperrors.Is(err, apperrors.ErrForbidden):
		status = "denied"
	case err != nil:
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "customer", operation, status)
	c.metrics.RecordDuration(ctx, "customer", operation, time.Since(start), status)
}

// List records metrics for customer listings.
func (c *customerUseCaseWithMetrics) List(
	ctx context.Context,
	principal *authDomain.Principal,
	params domain.ListCustomersParams,
) ([]*domain.Customer, error) {
	start := time.Now()
	customers, err := c.next.List(ctx, principal, params)
	c.record(ctx, "customer_list", start, err)
	return customers, err
}

// Create records metrics for customer creation.
func (c *customerUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *domain.CreateCustomerInput,
) (*domain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Create(ctx, principal, input)
	c.record(ctx, "customer_create", start, err)
	return customer, err
}
