// Package repository is the lock authority for accounts.
//
// AccountRepository is the only place that can mint a LockedAccount and the only place that
// accepts one back for persistence. The backing AccountStore performs the actual locking side
// effect: a row lock inside a dedicated transaction for PostgreSQL and MySQL, or a held-id set for
// the in-memory store.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/custody/internal/account/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

// AccountStore is the storage boundary behind AccountRepository.
type AccountStore interface {
	// Get loads an account without locking. The result may be slightly stale.
	Get(ctx context.Context, id string) (*domain.Account, error)

	// Acquire locks the account and loads it in one step. It fails fast with
	// domain.ErrAccountLocked when another lease is live, and never leaves a lock held when it
	// returns domain.ErrAccountNotFound.
	Acquire(ctx context.Context, id string) (Lease, error)

	// Create inserts a new account and its pending entries. Honours database.GetTx.
	Create(ctx context.Context, account *domain.Account) error

	// ListEntries returns ledger entries of one account, newest first.
	ListEntries(ctx context.Context, id string, offset, limit int) ([]domain.Entry, error)
}

// Lease is one held account lock.
type Lease interface {
	// Account returns the account loaded under the lock.
	Account() *domain.Account

	// Commit persists the account and entries, then releases the lock. The lock is released even
	// when persistence fails.
	Commit(ctx context.Context, account *domain.Account, entries []domain.Entry) error

	// Release frees the lock without persisting anything. Releasing twice is a no-op.
	Release(ctx context.Context) error
}

// persistFunc writes an account row and its new entries through q.
type persistFunc func(ctx context.Context, q database.Querier, account *domain.Account, entries []domain.Entry) error

// sqlLease holds a row lock for the lifetime of tx.
type sqlLease struct {
	tx      *sql.Tx
	account *domain.Account
	persist persistFunc
}

func (l *sqlLease) Account() *domain.Account {
	return l.account
}

func (l *sqlLease) Commit(ctx context.Context, account *domain.Account, entries []domain.Entry) error {
	if err := l.persist(ctx, l.tx, account, entries); err != nil {
		if rbErr := l.tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return apperrors.Join(err, rbErr)
		}
		return err
	}

	if err := l.tx.Commit(); err != nil {
		return apperrors.Wrap(err, "failed to commit account")
	}
	return nil
}

func (l *sqlLease) Release(ctx context.Context) error {
	if err := l.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.Wrap(err, "failed to release account lock")
	}
	return nil
}

// rollbackAcquire ends a lock transaction that did not produce a lease and returns cause.
func rollbackAcquire(tx *sql.Tx, cause error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		return apperrors.Join(cause, rbErr)
	}
	return cause
}

// mapAcquireError translates a lock query failure into a domain error.
func mapAcquireError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrAccountNotFound
	case database.IsLockNotAvailable(err):
		return domain.ErrAccountLocked
	default:
		return apperrors.Wrap(err, "failed to lock account")
	}
}
