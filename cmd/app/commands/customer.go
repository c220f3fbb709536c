package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	customerDomain "github.com/allisson/custody/internal/customer/domain"
	customerUseCase "github.com/allisson/custody/internal/customer/usecase"
	"github.com/allisson/custody/internal/database"
)

type customerOutput struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RunCreateCustomer inserts a customer as an operator. It writes through the repository and is
// not subject to project permissions, which only apply to authenticated API callers.
func RunCreateCustomer(
	ctx context.Context,
	txManager database.TxManager,
	customerRepo customerUseCase.CustomerRepository,
	logger *slog.Logger,
	writer io.Writer,
	projectID string,
	name string,
	email string,
	format string,
) error {
	project, err := uuid.Parse(projectID)
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", projectID, err)
	}

	customer, err := customerDomain.NewCustomer(&customerDomain.CreateCustomerInput{
		ProjectID: project,
		Name:      name,
		Email:     email,
	})
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	err = txManager.WithTx(ctx, func(ctx context.Context) error {
		return customerRepo.Create(ctx, customer)
	})
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("customer created",
		slog.String("customer_id", customer.ID.String()),
		slog.String("project_id", customer.ProjectID.String()),
	)

	output := customerOutput{
		ID:        customer.ID.String(),
		ProjectID: customer.ProjectID.String(),
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
	return writeResult(writer, format, output, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Customer created successfully!")
		_, _ = fmt.Fprintf(w, "Customer ID: %s\n", output.ID)
		_, _ = fmt.Fprintf(w, "Email: %s\n", output.Email)
	})
}
