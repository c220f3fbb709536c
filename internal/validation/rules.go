// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/custody/internal/errors"
)

// maxAmountScale is the number of fractional digits an amount may carry.
const maxAmountScale = 2

var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// amountRule validates a decimal string amount.
type amountRule struct {
	allowZero bool
}

// Validate checks that value is a decimal string with at most two fractional digits.
func (r amountRule) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_amount_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return validation.NewError("validation_amount_format", "must be a decimal number")
	}
	if amount.IsNegative() {
		return validation.NewError("validation_amount_negative", "must not be negative")
	}
	if amount.IsZero() && !r.allowZero {
		return validation.NewError("validation_amount_positive", "must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(maxAmountScale)) {
		return validation.NewError("validation_amount_scale", "must have at most 2 decimal places")
	}
	return nil
}

// PositiveAmount validates a decimal string greater than zero, e.g. a withdrawal.
var PositiveAmount validation.Rule = amountRule{}

// NonNegativeAmount validates a decimal string of zero or more, e.g. an opening balance.
var NonNegativeAmount validation.Rule = amountRule{allowZero: true}

// Identifier validates external identifiers such as account ids.
var Identifier = validation.NewStringRuleWithError(
	func(s string) bool {
		return identifierRegex.MatchString(s)
	},
	validation.NewError(
		"validation_identifier",
		"must start with a letter or digit and contain at most 64 letters, digits, '.', '_' or '-'",
	),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// UUID validates a canonical UUID string.
var UUID = validation.NewStringRuleWithError(
	func(s string) bool {
		return uuid.Validate(s) == nil
	},
	validation.NewError("validation_uuid", "must be a valid UUID"),
)

// Email validates a bare email address without display name.
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		addr, err := mail.ParseAddress(s)
		return err == nil && addr.Address == s
	},
	validation.NewError("validation_email", "must be a valid email address"),
)
