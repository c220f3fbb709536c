// Package usecase authenticates bearer tokens and derives project permissions.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
)

// ProjectRepository persists projects and resolves the project a manager runs.
type ProjectRepository interface {
	authDomain.ProjectDirectory
	Create(ctx context.Context, project *authDomain.Project) error
}

// AuthUseCase defines the authentication and authorization operations.
type AuthUseCase interface {
	// Authenticate verifies token and returns the principal it names.
	Authenticate(ctx context.Context, token string) (*authDomain.Principal, error)

	// ProjectPermission derives the principal's project scope. A nil permission together with
	// ErrNoProjectPermission means absence.
	ProjectPermission(ctx context.Context, principal *authDomain.Principal) (*authDomain.ProjectPermission, error)

	// Profile returns the principal's own roles and managed project.
	Profile(ctx context.Context, principal *authDomain.Principal) (*authDomain.Profile, error)

	// CreateProject registers a project run by managerID.
	CreateProject(ctx context.Context, name string, managerID uuid.UUID) (*authDomain.Project, error)
}
