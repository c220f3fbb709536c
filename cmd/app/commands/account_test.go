package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/allisson/custody/internal/account/domain"
	accountMocks "github.com/allisson/custody/internal/account/usecase/mocks"
)

func decimalEq(expected string) any {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func TestRunCreateAccount(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("text", func(t *testing.T) {
		mockUseCase := accountMocks.NewMockAccountUseCase(t)
		mockUseCase.On("Open", ctx, mock.MatchedBy(func(input *accountDomain.CreateAccountInput) bool {
			return input.ID == "A1" && input.InitialBalance.Equal(decimal.NewFromInt(100))
		})).Return(accountDomain.AccountView{ID: "A1", Balance: decimal.NewFromInt(100), UpdatedAt: now}, nil)

		var out bytes.Buffer
		err := RunCreateAccount(ctx, mockUseCase, logger, &out, "A1", "100", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Account ID: A1")
		require.Contains(t, out.String(), "Balance: 100")
	})

	t.Run("json", func(t *testing.T) {
		mockUseCase := accountMocks.NewMockAccountUseCase(t)
		mockUseCase.On("Open", ctx, mock.Anything).
			Return(accountDomain.AccountView{ID: "A1", Balance: decimal.RequireFromString("10.50"), UpdatedAt: now}, nil)

		var out bytes.Buffer
		err := RunCreateAccount(ctx, mockUseCase, logger, &out, "A1", "10.50", "json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, "A1", result["id"])
		require.Equal(t, "10.5", result["balance"])
	})

	t.Run("invalid-balance", func(t *testing.T) {
		mockUseCase := accountMocks.NewMockAccountUseCase(t)

		err := RunCreateAccount(ctx, mockUseCase, logger, &bytes.Buffer{}, "A1", "ten", "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid balance")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := accountMocks.NewMockAccountUseCase(t)
		mockUseCase.On("Open", ctx, mock.Anything).
			Return(accountDomain.AccountView{}, accountDomain.ErrAccountAlreadyExists)

		err := RunCreateAccount(ctx, mockUseCase, logger, &bytes.Buffer{}, "A1", "1", "text")
		require.ErrorIs(t, err, accountDomain.ErrAccountAlreadyExists)
	})
}

func TestRunWithdraw(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text", func(t *testing.T) {
		mockUseCase := accountMocks.NewMockAccountUseCase(t)
		mockUseCase.On("Withdraw", ctx, "A1", decimalEq("40")).
			Return(accountDomain.AccountView{ID: "A1", Balance: decimal.NewFromInt(60)}, nil)

		var out bytes.Buffer
		err := RunWithdraw(ctx, mockUseCase, logger, &out, "A1", "40", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Withdrew 40 from A1")
		require.Contains(t, out.String(), "Balance: 60")
	})

	t.Run("insufficient-funds", func(t *testing.T) {
		mockUseCase := accountMocks.NewMockAccountUseCase(t)
		mockUseCase.On("Withdraw", ctx, "A1", decimalEq("150")).
			Return(accountDomain.AccountView{}, accountDomain.ErrInsufficientFunds)

		err := RunWithdraw(ctx, mockUseCase, logger, &bytes.Buffer{}, "A1", "150", "text")
		require.ErrorIs(t, err, accountDomain.ErrInsufficientFunds)
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := accountMocks.NewMockAccountUseCase(t)
		mockUseCase.On("Withdraw", ctx, "A1", decimalEq("1")).
			Return(accountDomain.AccountView{ID: "A1", Balance: decimal.Zero}, nil)

		err := RunWithdraw(ctx, mockUseCase, logger, &bytes.Buffer{}, "A1", "1", "yaml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})
}
