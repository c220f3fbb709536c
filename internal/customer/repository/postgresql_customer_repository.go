package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/customer/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

// PostgreSQLCustomerRepository implements the customer accessor for PostgreSQL.
type PostgreSQLCustomerRepository struct {
	db *sql.DB
}

// NewPostgreSQLCustomerRepository creates a new PostgreSQL customer repository.
func NewPostgreSQLCustomerRepository(db *sql.DB) *PostgreSQLCustomerRepository {
	return &PostgreSQLCustomerRepository{db: db}
}

// Create inserts a new customer.
func (p *PostgreSQLCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO customers (id, project_id, name, email, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		customer.ID,
		customer.ProjectID,
		customer.Name,
		customer.Email,
		customer.CreatedAt,
	)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return domain.ErrCustomerAlreadyExists
		case database.IsForeignKeyViolation(err):
			return authDomain.ErrProjectNotFound
		}
		return apperrors.Wrap(err, "failed to create customer")
	}
	return nil
}

// List returns the customers perm grants, ordered by creation time descending.
func (p *PostgreSQLCustomerRepository) List(
	ctx context.Context,
	perm *authDomain.ProjectPermission,
	params domain.ListCustomersParams,
) ([]*domain.Customer, error) {
	scope, err := scopeOf(perm)
	if err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if scope.restricted {
		args = append(args, scope.projectID)
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if params.NameContains != "" {
		args = append(args, likePattern(params.NameContains))
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT id, project_id, name, email, created_at FROM customers`)
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	args = append(args, params.Limit, params.Offset)
	fmt.Fprintf(&b, " ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	querier := database.GetTx(ctx, p.db)
	rows, err := querier.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customers")
	}
	defer func() {
		_ = rows.Close()
	}()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.ProjectID,
			&customer.Name,
			&customer.Email,
			&customer.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan customer")
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate customers")
	}
	return customers, nil
}
