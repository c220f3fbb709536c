package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project groups customers under one managing principal.
type Project struct {
	ID        uuid.UUID
	Name      string
	ManagerID uuid.UUID
	CreatedAt time.Time
}

// NewProject creates a project managed by managerID.
func NewProject(name string, managerID uuid.UUID) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" || managerID == uuid.Nil {
		return nil, ErrInvalidProject
	}

	return &Project{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		ManagerID: managerID,
		CreatedAt: time.Now().UTC(),
	}, nil
}
