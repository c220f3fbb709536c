// Package domain defines the account model guarded by the lock capability protocol.
//
// An Account is only mutable through a LockedAccount minted by the account repository.
// Read paths receive an AccountView, which carries no mutation methods.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry.
type EntryKind string

const (
	// EntryDebit removes funds from an account.
	EntryDebit EntryKind = "debit"

	// EntryCredit adds funds to an account.
	EntryCredit EntryKind = "credit"
)

// Account is the mutable business object. Balance is never negative.
type Account struct {
	id        string
	balance   decimal.Decimal
	updatedAt time.Time
	pending   []Entry
	retired   bool
}

// AccountView is a read-only snapshot of an account.
type AccountView struct {
	ID        string
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

// Entry is a ledger row persisted together with the balance change it describes.
type Entry struct {
	ID           uuid.UUID
	AccountID    string
	Kind         EntryKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}

// CreateAccountInput contains the parameters for opening an account.
type CreateAccountInput struct {
	ID             string
	InitialBalance decimal.Decimal
}

// RestoreAccount rebuilds an account from storage. Stores are its only callers; the result
// can only be persisted through a lease minted by the same store.
func RestoreAccount(id string, balance decimal.Decimal, updatedAt time.Time) *Account {
	return &Account{
		id:        id,
		balance:   balance,
		updatedAt: updatedAt,
	}
}

// OpenAccount creates a new account with an opening credit entry. AccountRepository.Open is
// the path that persists it.
func OpenAccount(input *CreateAccountInput) (*Account, error) {
	if input.InitialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}

	now := time.Now().UTC()
	account := &Account{
		id:        input.ID,
		balance:   input.InitialBalance,
		updatedAt: now,
	}
	account.pending = append(account.pending, Entry{
		ID:           uuid.Must(uuid.NewV7()),
		AccountID:    input.ID,
		Kind:         EntryCredit,
		Amount:       input.InitialBalance,
		BalanceAfter: input.InitialBalance,
		CreatedAt:    now,
	})

	return account, nil
}

// ID returns the immutable account identity.
func (a *Account) ID() string {
	return a.id
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// UpdatedAt returns the time of the last persisted or pending change.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// Debit removes amount from the balance. A failed debit leaves the account untouched.
// A retired account refuses every debit with ErrStaleCapability.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.retired {
		return ErrStaleCapability
	}
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	now := time.Now().UTC()
	a.balance = a.balance.Sub(amount)
	a.updatedAt = now
	a.pending = append(a.pending, Entry{
		ID:           uuid.Must(uuid.NewV7()),
		AccountID:    a.id,
		Kind:         EntryDebit,
		Amount:       amount,
		BalanceAfter: a.balance,
		CreatedAt:    now,
	})

	return nil
}

// PendingEntries returns a copy of the entries recorded since the account was loaded.
func (a *Account) PendingEntries() []Entry {
	entries := make([]Entry, len(a.pending))
	copy(entries, a.pending)
	return entries
}

// ClearPending drops recorded entries once a store has persisted them.
func (a *Account) ClearPending() {
	a.pending = nil
}

// Retire detaches the account from the lock it was borrowed under. Later debits fail.
func (a *Account) Retire() {
	if a != nil {
		a.retired = true
	}
}

// View returns a read-only snapshot.
func (a *Account) View() AccountView {
	return AccountView{
		ID:        a.id,
		Balance:   a.balance,
		UpdatedAt: a.updatedAt,
	}
}
