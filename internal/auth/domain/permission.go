package domain

import (
	"context"

	"github.com/google/uuid"
)

type permissionKind int

const (
	permissionNone permissionKind = iota
	permissionAll
	permissionSingle
)

// ProjectPermission is the scope of project data a principal may see.
//
// Its fields are unexported, so the only populated values come from Principal.ProjectPermission.
// A nil or zero ProjectPermission grants nothing. Consumers branch on the variant through Visit;
// adding a variant adds a PermissionVisitor method, which breaks every consumer until it handles
// the new case.
type ProjectPermission struct {
	kind      permissionKind
	projectID uuid.UUID
}

// PermissionVisitor handles every ProjectPermission variant.
type PermissionVisitor interface {
	AllProjects()
	SingleProject(projectID uuid.UUID)
}

func newSingleProject(projectID uuid.UUID) (*ProjectPermission, error) {
	if projectID == uuid.Nil {
		return nil, ErrInvalidProject
	}
	return &ProjectPermission{kind: permissionSingle, projectID: projectID}, nil
}

// Allows reports whether data owned by projectID is in scope.
func (p *ProjectPermission) Allows(projectID uuid.UUID) bool {
	switch p.variant() {
	case permissionAll:
		return true
	case permissionSingle:
		return projectID == p.projectID
	default:
		return false
	}
}

// Visit calls exactly one visitor method matching the variant. A nil or zero permission calls
// none and returns ErrNoProjectPermission.
func (p *ProjectPermission) Visit(v PermissionVisitor) error {
	switch p.variant() {
	case permissionAll:
		v.AllProjects()
	case permissionSingle:
		v.SingleProject(p.projectID)
	default:
		return ErrNoProjectPermission
	}
	return nil
}

// String renders "all", "project:<id>" or "none" for logs.
func (p *ProjectPermission) String() string {
	switch p.variant() {
	case permissionAll:
		return "all"
	case permissionSingle:
		return "project:" + p.projectID.String()
	default:
		return "none"
	}
}

func (p *ProjectPermission) variant() permissionKind {
	if p == nil || (p.kind == permissionSingle && p.projectID == uuid.Nil) {
		return permissionNone
	}
	return p.kind
}

// ProjectDirectory resolves the project a manager is responsible for.
type ProjectDirectory interface {
	ProjectManagedBy(ctx context.Context, managerID PrincipalID) (*Project, error)
}

// ProjectPermission derives the principal's project scope.
//
// admin yields all projects and takes precedence over projectManager, which yields the project
// returned by directory. Any other role set yields ErrNoProjectPermission and a nil permission;
// callers must treat that as a denial.
func (p *Principal) ProjectPermission(ctx context.Context, directory ProjectDirectory) (*ProjectPermission, error) {
	switch {
	case p.HasRole(RoleAdmin):
		return &ProjectPermission{kind: permissionAll}, nil
	case p.HasRole(RoleProjectManager):
		project, err := directory.ProjectManagedBy(ctx, p.id)
		if err != nil {
			return nil, err
		}
		return newSingleProject(project.ID)
	default:
		return nil, ErrNoProjectPermission
	}
}
