package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/allisson/custody/internal/account/domain"
	"github.com/allisson/custody/internal/account/repository"
	"github.com/allisson/custody/internal/database"
)

// accountUseCase implements AccountUseCase.
type accountUseCase struct {
	txManager   database.TxManager
	accountRepo AccountRepository
}

// Get returns a read-only snapshot of the account.
func (a *accountUseCase) Get(ctx context.Context, id string) (domain.AccountView, error) {
	return a.accountRepo.Get(ctx, id)
}

// Withdraw locks the account, debits it and saves it.
func (a *accountUseCase) Withdraw(
	ctx context.Context,
	id string,
	amount decimal.Decimal,
) (domain.AccountView, error) {
	var (
		view     domain.AccountView
		debitErr error
	)

	err := a.accountRepo.WithLock(ctx, id, func(ctx context.Context, locked *repository.LockedAccount) error {
		err := locked.With(func(account *domain.Account) error {
			// A failed debit leaves the account untouched, so saving it only releases the lock.
			debitErr = account.Debit(amount)
			view = account.View()
			return nil
		})
		if err != nil {
			return err
		}

		return a.accountRepo.Save(ctx, locked)
	})
	if err != nil {
		return domain.AccountView{}, err
	}
	if debitErr != nil {
		return domain.AccountView{}, debitErr
	}

	return view, nil
}

// Open creates the account and its opening credit entry in one transaction.
func (a *accountUseCase) Open(
	ctx context.Context,
	input *domain.CreateAccountInput,
) (domain.AccountView, error) {
	var view domain.AccountView

	err := a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		opened, err := a.accountRepo.Open(txCtx, input)
		if err != nil {
			return err
		}
		view = opened
		return nil
	})
	if err != nil {
		return domain.AccountView{}, err
	}

	return view, nil
}

// ListEntries returns ledger entries of an existing account, newest first.
func (a *accountUseCase) ListEntries(
	ctx context.Context,
	id string,
	offset, limit int,
) ([]domain.Entry, error) {
	if _, err := a.accountRepo.Get(ctx, id); err != nil {
		return nil, err
	}
	return a.accountRepo.ListEntries(ctx, id, offset, limit)
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(txManager database.TxManager, accountRepo AccountRepository) AccountUseCase {
	return &accountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
	}
}
