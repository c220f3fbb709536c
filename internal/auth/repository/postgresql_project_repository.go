// Package repository implements project persistence and the project directory used to derive
// a manager's project permission.
//
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

// PostgreSQLProjectRepository implements Project persistence for PostgreSQL.
type PostgreSQLProjectRepository struct {
	db *sql.DB
}

// NewPostgreSQLProjectRepository creates a new PostgreSQL Project repository.
func NewPostgreSQLProjectRepository(db *sql.DB) *PostgreSQLProjectRepository {
	return &PostgreSQLProjectRepository{db: db}
}

// Create inserts a new Project. A manager may run only one project.
func (p *PostgreSQLProjectRepository) Create(ctx context.Context, project *authDomain.Project) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO projects (id, name, manager_id, created_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, project.ID, project.Name, project.ManagerID, project.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "manager already has a project")
		}
		return apperrors.Wrap(err, "failed to create project")
	}
	return nil
}

// ProjectManagedBy returns the project whose manager is managerID.
func (p *PostgreSQLProjectRepository) ProjectManagedBy(
	ctx context.Context,
	managerID authDomain.PrincipalID,
) (*authDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, manager_id, created_at FROM projects WHERE manager_id = $1`

	var project authDomain.Project
	err := querier.QueryRowContext(ctx, query, managerID.UUID()).Scan(
		&project.ID,
		&project.Name,
		&project.ManagerID,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get managed project")
	}

	return &project, nil
}
