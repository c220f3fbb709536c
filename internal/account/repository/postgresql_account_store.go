package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/custody/internal/account/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

// PostgreSQLAccountStore implements AccountStore for PostgreSQL.
// A lease is a dedicated transaction holding SELECT ... FOR UPDATE NOWAIT on the account row.
type PostgreSQLAccountStore struct {
	db *sql.DB
}

// NewPostgreSQLAccountStore creates a new PostgreSQL account store.
func NewPostgreSQLAccountStore(db *sql.DB) *PostgreSQLAccountStore {
	return &PostgreSQLAccountStore{db: db}
}

// Get retrieves an account by id without locking.
func (p *PostgreSQLAccountStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, balance, updated_at FROM accounts WHERE id = $1`

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
func (p *PostgreSQLAccountStore) Acquire(ctx context.Context, id string) (Lease, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to begin account lock")
	}

	query := `SELECT id, balance, updated_at FROM accounts WHERE id = $1 FOR UPDATE NOWAIT`

	account, err := scanAccount(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, rollbackAcquire(tx, mapAcquireError(err))
	}

	return &sqlLease{tx: tx, account: account, persist: p.persist}, nil
}

// Create inserts a new account and its entries.
func (p *PostgreSQLAccountStore) Create(ctx context.Context, account *domain.Account) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO accounts (id, balance, updated_at) VALUES ($1, $2, $3)`

	_, err := querier.ExecContext(ctx, query, account.ID(), account.Balance(), account.UpdatedAt())
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrAccountAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create account")
	}

	return p.insertEntries(ctx, querier, account.PendingEntries())
}

// ListEntries returns entries newest first.
func (p *PostgreSQLAccountStore) ListEntries(
	ctx context.Context,
	id string,
	offset, limit int,
) ([]domain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, account_id, kind, amount, balance_after, created_at
			  FROM account_entries
			  WHERE account_id = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list account entries")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.AccountID,
			&entry.Kind,
			&entry.Amount,
			&entry.BalanceAfter,
			&entry.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan account entry")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate account entries")
	}
	return entries, nil
}

func (p *PostgreSQLAccountStore) persist(
	ctx context.Context,
	q database.Querier,
	account *domain.Account,
	entries []domain.Entry,
) error {
	query := `UPDATE accounts SET balance = $1, updated_at = $2 WHERE id = $3`

	if _, err := q.ExecContext(ctx, query, account.Balance(), account.UpdatedAt(), account.ID()); err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}
	return p.insertEntries(ctx, q, entries)
}

func (p *PostgreSQLAccountStore) insertEntries(
	ctx context.Context,
	q database.Querier,
	entries []domain.Entry,
) error {
	query := `INSERT INTO account_entries (id, account_id, kind, amount, balance_after, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	for _, entry := range entries {
		_, err := q.ExecContext(
			ctx,
			query,
			entry.ID,
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

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var view domain.AccountView
	if err := row.Scan(&view.ID, &view.Balance, &view.UpdatedAt); err != nil {
		return nil, err
	}
	return domain.RestoreAccount(view.ID, view.Balance, view.UpdatedAt), nil
}
