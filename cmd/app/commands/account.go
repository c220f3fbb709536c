package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	accountDomain "github.com/allisson/custody/internal/account/domain"
	accountUseCase "github.com/allisson/custody/internal/account/usecase"
)

type accountOutput struct {
	ID        string    `json:"id"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAccountOutput(view accountDomain.AccountView) accountOutput {
	return accountOutput{
		ID:        view.ID,
		Balance:   view.Balance.String(),
		UpdatedAt: view.UpdatedAt,
	}
}

// RunCreateAccount opens an account with an initial balance.
func RunCreateAccount(
	ctx context.Context,
	accountUseCase accountUseCase.AccountUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id string,
	balance string,
	format string,
) error {
	initialBalance, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	view, err := accountUseCase.Open(ctx, &accountDomain.CreateAccountInput{
		ID:             id,
		InitialBalance: initialBalance,
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("account created",
		slog.String("account_id", view.ID),
		slog.String("balance", view.Balance.String()),
	)

	return writeResult(writer, format, newAccountOutput(view), func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Account created successfully!")
		_, _ = fmt.Fprintf(w, "Account ID: %s\n", view.ID)
		_, _ = fmt.Fprintf(w, "Balance: %s\n", view.Balance.String())
	})
}

// RunWithdraw debits amount from the account through the same locked path the API uses.
func RunWithdraw(
	ctx context.Context,
	accountUseCase accountUseCase.AccountUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id string,
	amount string,
	format string,
) error {
	debit, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	view, err := accountUseCase.Withdraw(ctx, id, debit)
	if err != nil {
		return fmt.Errorf("failed to withdraw: %w", err)
	}

	logger.Info("withdrawal completed",
		slog.String("account_id", view.ID),
		slog.String("amount", debit.String()),
		slog.String("balance", view.Balance.String()),
	)

	return writeResult(writer, format, newAccountOutput(view), func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Withdrew %s from %s\n", debit.String(), view.ID)
		_, _ = fmt.Fprintf(w, "Balance: %s\n", view.Balance.String())
	})
}
