package domain

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/custody/internal/errors"
)

func TestAccount_Debit(t *testing.T) {
	tests := []struct {
		name            string
		balance         string
		amount          string
		expectedErr     error
		expectedBalance string
	}{
		{
			name:            "Success_PartialDebit",
			balance:         "100",
			amount:          "40.25",
			expectedBalance: "59.75",
		},
		{
			name:            "Success_DebitWholeBalance",
			balance:         "100",
			amount:          "100",
			expectedBalance: "0",
		},
		{
			name:            "Success_ZeroAmount",
			balance:         "100",
			amount:          "0",
			expectedBalance: "100",
		},
		{
			name:            "Error_InsufficientFunds",
			balance:         "100",
			amount:          "150",
			expectedErr:     ErrInsufficientFunds,
			expectedBalance: "100",
		},
		{
			name:            "Error_NegativeAmount",
			balance:         "100",
			amount:          "-1",
			expectedErr:     ErrInvalidAmount,
			expectedBalance: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := RestoreAccount("A1", decimal.RequireFromString(tt.balance), time.Now().UTC())

			err := account.Debit(decimal.RequireFromString(tt.amount))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Empty(t, account.PendingEntries())
			} else {
				assert.NoError(t, err)
				require.Len(t, account.PendingEntries(), 1)
			}
			assert.True(
				t,
				decimal.RequireFromString(tt.expectedBalance).Equal(account.Balance()),
				"expected %s, got %s", tt.expectedBalance, account.Balance(),
			)
		})
	}
}

func TestAccount_Debit_RecordsEntry(t *testing.T) {
	account := RestoreAccount("A1", decimal.NewFromInt(100), time.Now().UTC())

	require.NoError(t, account.Debit(decimal.NewFromInt(30)))

	entries := account.PendingEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "A1", entries[0].AccountID)
	assert.Equal(t, EntryDebit, entries[0].Kind)
	assert.True(t, decimal.NewFromInt(30).Equal(entries[0].Amount))
	assert.True(t, decimal.NewFromInt(70).Equal(entries[0].BalanceAfter))

	account.ClearPending()
	assert.Empty(t, account.PendingEntries())
}

func TestAccount_Retire(t *testing.T) {
	account := RestoreAccount("A1", decimal.NewFromInt(100), time.Now().UTC())

	account.Retire()

	assert.ErrorIs(t, account.Debit(decimal.NewFromInt(1)), ErrStaleCapability)
	assert.True(t, decimal.NewFromInt(100).Equal(account.Balance()))
	assert.Empty(t, account.PendingEntries())

	var missing *Account
	assert.NotPanics(t, missing.Retire)
}

func TestAccount_BalanceNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for run := 0; run < 200; run++ {
		account := RestoreAccount("A1", decimal.NewFromInt(int64(rng.IntN(500))), time.Now().UTC())

		for step := 0; step < 50; step++ {
			amount := decimal.New(int64(rng.IntN(20000))-1000, -2)
			before := account.Balance()

			if err := account.Debit(amount); err != nil {
				assert.True(t, before.Equal(account.Balance()), "failed debit must not mutate")
			}
			require.False(t, account.Balance().IsNegative(), "balance went negative: %s", account.Balance())
		}
	}
}

func TestOpenAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		account, err := OpenAccount(&CreateAccountInput{ID: "A1", InitialBalance: decimal.NewFromInt(100)})
		require.NoError(t, err)

		assert.Equal(t, "A1", account.ID())
		assert.True(t, decimal.NewFromInt(100).Equal(account.Balance()))

		entries := account.PendingEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, EntryCredit, entries[0].Kind)
	})

	t.Run("Error_NegativeBalance", func(t *testing.T) {
		account, err := OpenAccount(&CreateAccountInput{ID: "A1", InitialBalance: decimal.NewFromInt(-5)})
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Nil(t, account)
	})
}

func TestAccount_View(t *testing.T) {
	updatedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	account := RestoreAccount("A1", decimal.NewFromInt(100), updatedAt)

	view := account.View()
	require.NoError(t, account.Debit(decimal.NewFromInt(10)))

	assert.Equal(t, "A1", view.ID)
	assert.True(t, decimal.NewFromInt(100).Equal(view.Balance), "view is a snapshot")
	assert.Equal(t, updatedAt, view.UpdatedAt)
}

func TestNewLockEvent(t *testing.T) {
	event := NewLockEvent(LockEventContention, "A1", ErrAccountLocked)

	assert.Equal(t, LockEventContention, event.Kind)
	assert.Equal(t, "A1", event.AccountID)
	assert.ErrorIs(t, event.Err, apperrors.ErrLocked)
	assert.False(t, event.OccurredAt.IsZero())
}
