// Package usecase orchestrates account reads, withdrawals and account opening.
// Every mutation goes through the repository's scoped lock construct.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/allisson/custody/internal/account/domain"
	"github.com/allisson/custody/internal/account/repository"
)

// AccountRepository is the lock authority used by the account use case.
// *repository.AccountRepository is the production implementation.
type AccountRepository interface {
	Get(ctx context.Context, id string) (domain.AccountView, error)
	WithLock(ctx context.Context, id string, fn func(ctx context.Context, locked *repository.LockedAccount) error) error
	Save(ctx context.Context, locked *repository.LockedAccount) error
	Open(ctx context.Context, input *domain.CreateAccountInput) (domain.AccountView, error)
	ListEntries(ctx context.Context, id string, offset, limit int) ([]domain.Entry, error)
}

// AccountUseCase defines the account business operations.
type AccountUseCase interface {
	Get(ctx context.Context, id string) (domain.AccountView, error)
	// Withdraw debits amount under the account lock. A rejected debit still releases the lock
	// and leaves the stored balance unchanged.
	Withdraw(ctx context.Context, id string, amount decimal.Decimal) (domain.AccountView, error)
	Open(ctx context.Context, input *domain.CreateAccountInput) (domain.AccountView, error)
	ListEntries(ctx context.Context, id string, offset, limit int) ([]domain.Entry, error)
}
