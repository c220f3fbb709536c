package domain

import (
	"github.com/allisson/custody/internal/errors"
)

// Customer-specific error definitions.
var (
	// ErrInvalidCustomer indicates missing or malformed customer attributes.
	ErrInvalidCustomer = errors.Wrap(errors.ErrInvalidInput, "invalid customer")

	// ErrCustomerAlreadyExists indicates the email is already registered in the project.
	ErrCustomerAlreadyExists = errors.Wrap(errors.ErrConflict, "customer already exists")
)
