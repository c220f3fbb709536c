package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/allisson/custody/internal/account/domain"
	"github.com/allisson/custody/internal/metrics"
)

// accountUseCaseWithMetrics decorates AccountUseCase with metrics instrumentation.
type accountUseCaseWithMetrics struct {
	next    AccountUseCase
	metrics metrics.BusinessMetrics
}

// NewAccountUseCaseWithMetrics wraps an AccountUseCase with metrics recording.
func NewAccountUseCaseWithMetrics(useCase AccountUseCase, m metrics.BusinessMetrics) AccountUseCase {
	return &accountUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *accountUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", operation, status)
	a.metrics.RecordDuration(ctx, "account", operation, time.Since(start), status)
}

// Get records metrics for account reads.
func (a *accountUseCaseWithMetrics) Get(ctx context.Context, id string) (domain.AccountView, error) {
	start := time.Now()
	view, err := a.next.Get(ctx, id)
	a.record(ctx, "account_get", start, err)
	return view, err
}

// Withdraw records metrics for withdrawals.
func (a *accountUseCaseWithMetrics) Withdraw(
	ctx context.Context,
	id string,
	amount decimal.Decimal,
) (domain.AccountView, error) {
	start := time.Now()
	view, err := a.next.Withdraw(ctx, id, amount)
	a.record(ctx, "account_withdraw", start, err)
	return view, err
}

// Open records metrics for account opening.
func (a *accountUseCaseWithMetrics) Open(
	ctx context.Context,
	input *domain.CreateAccountInput,
) (domain.AccountView, error) {
	start := time.Now()
	view, err := a.next.Open(ctx, input)
	a.record(ctx, "account_open", start, err)
	return view, err
}

// ListEntries records metrics for ledger listing.
func (a *accountUseCaseWithMetrics) ListEntries(
	ctx context.Context,
	id string,
	offset, limit int,
) ([]domain.Entry, error) {
	start := time.Now()
	entries, err := a.next.ListEntries(ctx, id, offset, limit)
	a.record(ctx, "account_list_entries", start, err)
	return entries, err
}
