package domain

import (
	"github.com/allisson/custody/internal/errors"
)

// Account-specific error definitions.
var (
	// ErrAccountNotFound indicates no account exists with the requested id.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrAccountLocked indicates another caller holds the account lock.
	ErrAccountLocked = errors.Wrap(errors.ErrLocked, "account locked")

	// ErrAccountAlreadyExists indicates an account with the same id is already stored.
	ErrAccountAlreadyExists = errors.Wrap(errors.ErrConflict, "account already exists")

	// ErrInsufficientFunds indicates a debit larger than the current balance.
	ErrInsufficientFunds = errors.Wrap(errors.ErrInvalidInput, "insufficient funds")

	// ErrInvalidAmount indicates a negative amount.
	ErrInvalidAmount = errors.Wrap(errors.ErrInvalidInput, "amount must not be negative")

	// ErrStaleCapability indicates a locked account was used after it was saved, closed or moved.
	// It always points at a bug in the caller.
	ErrStaleCapability = errors.New("stale account lock capability")
)
