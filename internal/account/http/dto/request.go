// Package dto provides data transfer objects for account HTTP requests and responses.
// Amounts travel as decimal strings so no precision is lost in JSON.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"github.com/allisson/custody/internal/account/domain"
	customValidation "github.com/allisson/custody/internal/validation"
)

// WithdrawRequest contains the amount to debit. The account id comes from the URL.
type WithdrawRequest struct {
	Amount string `json:"amount"`
}

// Validate checks if the withdraw request is valid.
func (r *WithdrawRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Amount,
			validation.Required,
			customValidation.PositiveAmount,
		),
	)
}

// AmountDecimal returns the validated amount.
func (r *WithdrawRequest) AmountDecimal() decimal.Decimal {
	return decimal.RequireFromString(r.Amount)
}

// OpenAccountRequest contains the parameters for opening an account.
type OpenAccountRequest struct {
	ID             string `json:"id"`
	InitialBalance string `json:"initial_balance"`
}

// Validate checks if the open account request is valid.
func (r *OpenAccountRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID,
			validation.Required,
			customValidation.Identifier,
		),
		validation.Field(&r.InitialBalance,
			customValidation.NonNegativeAmount,
		),
	)
}

// ToDomain converts the validated request. An empty initial balance opens the account at zero.
func (r *OpenAccountRequest) ToDomain() *domain.CreateAccountInput {
	balance := decimal.Zero
	if r.InitialBalance != "" {
		balance = decimal.RequireFromString(r.InitialBalance)
	}
	return &domain.CreateAccountInput{
		ID:             r.ID,
		InitialBalance: balance,
	}
}
