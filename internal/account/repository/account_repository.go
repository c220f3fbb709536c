package repository

import (
	"context"

	"github.com/allisson/custody/internal/account/domain"
	apperrors "github.com/allisson/custody/internal/errors"
)

// AccountRepository mints and accepts account lock capabilities.
type AccountRepository struct {
	store AccountStore
	sink  LockEventSink
}

// NewAccountRepository creates an AccountRepository. A nil sink discards events.
func NewAccountRepository(store AccountStore, sink LockEventSink) *AccountRepository {
	if sink == nil {
		sink = NewMultiEventSink()
	}
	return &AccountRepository{store: store, sink: sink}
}

// Get returns a read-only snapshot without touching the lock.
func (r *AccountRepository) Get(ctx context.Context, id string) (domain.AccountView, error) {
	account, err := r.store.Get(ctx, id)
	if err != nil {
		return domain.AccountView{}, err
	}
	return account.View(), nil
}

// Lock acquires the account lock and returns the capability that proves it.
func (r *AccountRepository) Lock(ctx context.Context, id string) (*LockedAccount, error) {
	lease, err := r.store.Acquire(ctx, id)
	if err != nil {
		if apperrors.Is(err, domain.ErrAccountLocked) {
			r.sink.Record(ctx, domain.NewLockEvent(domain.LockEventContention, id, err))
		}
		return nil, err
	}
	return newLockedAccount(id, lease, r.sink), nil
}

// Save persists the locked account, releases the lock and invalidates the capability.
// A stale capability is rejected with domain.ErrStaleCapability and reported.
func (r *AccountRepository) Save(ctx context.Context, locked *LockedAccount) error {
	if locked == nil {
		r.sink.Record(ctx, domain.NewLockEvent(domain.LockEventStaleCapability, "", domain.ErrStaleCapability))
		return domain.ErrStaleCapability
	}

	lease, err := locked.take()
	if err != nil {
		r.sink.Record(ctx, domain.NewLockEvent(domain.LockEventStaleCapability, locked.ID(), err))
		return err
	}

	account := lease.Account()
	defer account.Retire()

	if err := lease.Commit(ctx, account, account.PendingEntries()); err != nil {
		if relErr := lease.Release(ctx); relErr != nil {
			return apperrors.Join(err, relErr)
		}
		return err
	}

	account.ClearPending()
	return nil
}

// WithLock runs fn while holding the account lock. The lock is released on every exit path,
// including errors and panics in fn. fn is expected to hand the capability to Save; when it
// does not, the release is reported as forgotten.
func (r *AccountRepository) WithLock(
	ctx context.Context,
	id string,
	fn func(ctx context.Context, locked *LockedAccount) error,
) (err error) {
	locked, err := r.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := locked.Close(ctx); closeErr != nil {
			err = apperrors.Join(err, closeErr)
		}
	}()

	return fn(ctx, locked)
}

// Open creates an account with its opening credit entry and returns its snapshot.
func (r *AccountRepository) Open(ctx context.Context, input *domain.CreateAccountInput) (domain.AccountView, error) {
	account, err := domain.OpenAccount(input)
	if err != nil {
		return domain.AccountView{}, err
	}
	if err := r.store.Create(ctx, account); err != nil {
		return domain.AccountView{}, err
	}
	return account.View(), nil
}

// ListEntries returns ledger entries of one account, newest first.
func (r *AccountRepository) ListEntries(
	ctx context.Context,
	id string,
	offset, limit int,
) ([]domain.Entry, error) {
	return r.store.ListEntries(ctx, id, offset, limit)
}
