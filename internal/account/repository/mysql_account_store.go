package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/custody/internal/account/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

// MySQLAccountStore implements AccountStore for MySQL 8.0+.
// Entry ids are stored as BINARY(16). The DSN must set parseTime=true.
type MySQLAccountStore struct {
	db *sql.DB
}

// NewMySQLAccountStore creates a new MySQL account store.
func NewMySQLAccountStore(db *sql.DB) *MySQLAccountStore {
	return &MySQLAccountStore{db: db}
}

// Get retrieves an account by id without locking.
func (m *MySQLAccountStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, balance, updated_at FROM accounts WHERE id = ?`

	account, err := scanAccount(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account")
	}
	return account, nil
}

// Acquire opens a transaction and locks the account row without waiting.
func (m *MySQLAccountStore) Acquire(ctx context.Context, id string) (Lease, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to begin account lock")
	}

	query := `SELECT id, balance, updated_at FROM accounts WHERE id = ? FOR UPDATE NOWAIT`

	account, err := scanAccount(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, rollbackAcquire(tx, mapAcquireError(err))
	}

	return &sqlLease{tx: tx, account: account, persist: m.persist}, nil
}

// Create inserts a new account and its entries.
func (m *MySQLAccountStore) Create(ctx context.Context, account *domain.Account) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO accounts (id, balance, updated_at) VALUES (?, ?, ?)`

	_, err := querier.ExecContext(ctx, query, account.ID(), account.Balance(), account.UpdatedAt())
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrAccountAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create account")
	}

	return m.insertEntries(ctx, querier, account.PendingEntries())
}

// ListEntries returns entries newest first.
func (m *MySQLAccountStore) ListEntries(
	ctx context.Context,
	id string,
	offset, limit int,
) ([]domain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, account_id, kind, amount, balance_after, created_at
			  FROM account_entries
			  WHERE account_id = ?
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list account entries")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		var (
			entry   domain.Entry
			entryID []byte
		)
		if err := rows.Scan(
			&entryID,
			&entry.AccountID,
			&entry.Kind,
			&entry.Amount,
			&entry.BalanceAfter,
			&entry.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan account entry")
		}
		if entry.ID, err = uuid.FromBytes(entryID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse account entry id")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate account entries")
	}
	return entries, nil
}

func (m *MySQLAccountStore) persist(
	ctx context.Context,
	q database.Querier,
	account *domain.Account,
	entries []domain.Entry,
) error {
	query := `UPDATE accounts SET balance = ?, updated_at = ? WHERE id = ?`

	if _, err := q.ExecContext(ctx, query, account.Balance(), account.UpdatedAt(), account.ID()); err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}
	return m.insertEntries(ctx, q, entries)
}

func (m *MySQLAccountStore) insertEntries(
	ctx context.Context,
	q database.Querier,
	entries []domain.Entry,
) error {
	query := `INSERT INTO account_entries (id, account_id, kind, amount, balance_after, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	for _, entry := range entries {
		id, err := entry.ID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal account entry id")
		}

		_, err = q.ExecContext(
			ctx,
			query,
			id,
			entry.AccountID,
			entry.Kind,
			entry.Amount,
			entry.BalanceAfter,
			entry.CreatedAt,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to insert account entry")
		}
	}
	return nil
}
