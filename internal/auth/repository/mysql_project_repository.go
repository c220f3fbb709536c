package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

// MySQLProjectRepository implements Project persistence for MySQL.
type MySQLProjectRepository struct {
	db *sql.DB
}

// NewMySQLProjectRepository creates a new MySQL Project repository.
func NewMySQLProjectRepository(db *sql.DB) *MySQLProjectRepository {
	return &MySQLProjectRepository{db: db}
}

// Create inserts a new Project. A manager may run only one project.
func (m *MySQLProjectRepository) Create(ctx context.Context, project *authDomain.Project) error {
	querier := database.GetTx(ctx, m.db)

	id, err := project.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal project id")
	}
	managerID, err := project.ManagerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal manager id")
	}

	query := `INSERT INTO projects (id, name, manager_id, created_at) VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, project.Name, managerID, project.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "manager already has a project")
		}
		return apperrors.Wrap(err, "failed to create project")
	}
	return nil
}

// ProjectManagedBy returns the project whose manager is managerID.
func (m *MySQLProjectRepository) ProjectManagedBy(
	ctx context.Context,
	managerID authDomain.PrincipalID,
) (*authDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	managerBytes, err := managerID.UUID().MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal manager id")
	}

	query := `SELECT id, name, manager_id, created_at FROM projects WHERE manager_id = ?`

	var (
		project        authDomain.Project
		id, managerRaw []byte
	)
	err = querier.QueryRowContext(ctx, query, managerBytes).Scan(&id, &project.Name, &managerRaw, &project.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get managed project")
	}

	if project.ID, err = uuid.FromBytes(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse project id")
	}
	if project.ManagerID, err = uuid.FromBytes(managerRaw); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse manager id")
	}

	return &project, nil
}
