package repository

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/allisson/custody/internal/account/domain"
)

type memoryRow struct {
	balance   decimal.Decimal
	updatedAt time.Time
}

// MemoryAccountStore keeps accounts in process memory. One mutex guards rows, entries and the
// held-lock set, so acquisition checks existence and lock state together.
type MemoryAccountStore struct {
	mu      sync.Mutex
	rows    map[string]memoryRow
	entries map[string][]domain.Entry
	held    map[string]struct{}
}

// NewMemoryAccountStore creates an empty MemoryAccountStore.
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		rows:    make(map[string]memoryRow),
		entries: make(map[string][]domain.Entry),
		held:    make(map[string]struct{}),
	}
}

// Get returns a copy of the stored row. It ignores the held-lock set.
func (s *MemoryAccountStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return domain.RestoreAccount(id, row.balance, row.updatedAt), nil
}

// Acquire marks the account as held and returns a lease over a private copy of it.
func (s *MemoryAccountStore) Acquire(ctx context.Context, id string) (Lease, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if _, locked := s.held[id]; locked {
		return nil, domain.ErrAccountLocked
	}

	s.held[id] = struct{}{}
	return &memoryLease{
		store:   s,
		account: domain.RestoreAccount(id, row.balance, row.updatedAt),
	}, nil
}

// Create stores a new account and its opening entries.
func (s *MemoryAccountStore) Create(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[account.ID()]; ok {
		return domain.ErrAccountAlreadyExists
	}

	s.rows[account.ID()] = memoryRow{balance: account.Balance(), updatedAt: account.UpdatedAt()}
	s.entries[account.ID()] = append(s.entries[account.ID()], account.PendingEntries()...)
	return nil
}

// ListEntries returns entries newest first.
func (s *MemoryAccountStore) ListEntries(
	ctx context.Context,
	id string,
	offset, limit int,
) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.entries[id]
	newestFirst := make([]domain.Entry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, stored[i])
	}
	return lo.Slice(newestFirst, offset, offset+limit), nil
}

// memoryLease releases its held id exactly once.
type memoryLease struct {
	store   *MemoryAccountStore
	account *domain.Account
	done    bool
}

func (l *memoryLease) Account() *domain.Account {
	return l.account
}

func (l *memoryLease) Commit(ctx context.Context, account *domain.Account, entries []domain.Entry) error {
	s := l.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.done {
		return domain.ErrStaleCapability
	}
	l.done = true
	delete(s.held, account.ID())

	s.rows[account.ID()] = memoryRow{balance: account.Balance(), updatedAt: account.UpdatedAt()}
	s.entries[account.ID()] = append(s.entries[account.ID()], entries...)
	return nil
}

func (l *memoryLease) Release(ctx context.Context) error {
	s := l.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.done {
		return nil
	}
	l.done = true
	delete(s.held, l.account.ID())
	return nil
}
