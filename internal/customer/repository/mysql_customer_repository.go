package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/customer/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

// MySQLCustomerRepository implements the customer accessor for MySQL. Ids are stored as BINARY(16).
type MySQLCustomerRepository struct {
	db *sql.DB
}

// NewMySQLCustomerRepository creates a new MySQL customer repository.
func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

// Create inserts a new customer.
func (m *MySQLCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, m.db)

	id, err := customer.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal customer id")
	}
	projectID, err := customer.ProjectID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal project id")
	}

	query := `INSERT INTO customers (id, project_id, name, email, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, projectID, customer.Name, customer.Email, customer.CreatedAt)
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
func (m *MySQLCustomerRepository) List(
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
		projectID, err := scope.projectID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal project id")
		}
		conditions = append(conditions, "project_id = ?")
		args = append(args, projectID)
	}
	if params.NameContains != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, likePattern(params.NameContains))
	}

	var b strings.Builder
	b.WriteString(`SELECT id, project_id, name, email, created_at FROM customers`)
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")
	args = append(args, params.Limit, params.Offset)

	querier := database.GetTx(ctx, m.db)
	rows, err := querier.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customers")
	}
	defer func() {
		_ = rows.Close()
	}()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var (
			customer          domain.Customer
			id, projectIDData []byte
		)
		if err := rows.Scan(&id, &projectIDData, &customer.Name, &customer.Email, &customer.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan customer")
		}
		if customer.ID, err = uuid.FromBytes(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse customer id")
		}
		if customer.ProjectID, err = uuid.FromBytes(projectIDData); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse project id")
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate customers")
	}
	return customers, nil
}
