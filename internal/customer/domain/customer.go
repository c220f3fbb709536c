// Package domain defines protected customer records. Customers belong to exactly one project and
// are readable only through a project permission.
package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a protected record owned by a project.
type Customer struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// CreateCustomerInput contains the attributes of a new customer.
type CreateCustomerInput struct {
	ProjectID uuid.UUID
	Name      string
	Email     string
}

// ListCustomersParams narrows a customer listing inside the caller's permitted scope.
type ListCustomersParams struct {
	Offset       int
	Limit        int
	NameContains string
}

// NewCustomer validates input and creates a customer with a fresh id.
func NewCustomer(input *CreateCustomerInput) (*Customer, error) {
	name := strings.TrimSpace(input.Name)
	if input.ProjectID == uuid.Nil || name == "" {
		return nil, ErrInvalidCustomer
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(input.Email))
	if err != nil {
		return nil, ErrInvalidCustomer
	}

	return &Customer{
		ID:        uuid.Must(uuid.NewV7()),
		ProjectID: input.ProjectID,
		Name:      name,
		Email:     strings.ToLower(addr.Address),
		CreatedAt: time.Now().UTC(),
	}, nil
}
