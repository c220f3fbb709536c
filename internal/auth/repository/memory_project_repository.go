package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	apperrors "github.com/allisson/custody/internal/errors"
)

// MemoryProjectRepository keeps projects in process memory. It backs the memory driver.
type MemoryProjectRepository struct {
	mu        sync.RWMutex
	byManager map[uuid.UUID]*authDomain.Project
}

// NewMemoryProjectRepository creates an empty in-memory Project repository.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{byManager: make(map[uuid.UUID]*authDomain.Project)}
}

// Create stores project. A manager may run only one project.
func (m *MemoryProjectRepository) Create(ctx context.Context, project *authDomain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byManager[project.ManagerID]; ok {
		return apperrors.Wrap(apperrors.ErrConflict, "manager already has a project")
	}
	stored := *project
	m.byManager[project.ManagerID] = &stored
	return nil
}

// ProjectManagedBy returns the project whose manager is managerID.
func (m *MemoryProjectRepository) ProjectManagedBy(
	ctx context.Context,
	managerID authDomain.PrincipalID,
) (*authDomain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	project, ok := m.byManager[managerID.UUID()]
	if !ok {
		return nil, authDomain.ErrProjectNotFound
	}
	found := *project
	return &found, nil
}
