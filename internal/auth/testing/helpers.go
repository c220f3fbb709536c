// Package testing provides shared test utilities for code that consumes principals and
// project permissions. Both can only be obtained through token verification, so the helpers
// issue and verify real tokens signed with a throwaway key.
package testing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/auth/service"
)

const (
	// TokenSecret signs every token the helpers issue.
	TokenSecret = "custody-test-secret"

	// TokenIssuer is the issuer the helpers' token service expects.
	TokenIssuer = "custody-test"
)

// NewTokenService returns a token service keyed with TokenSecret.
func NewTokenService(t testing.TB) service.TokenService {
	t.Helper()

	svc, err := service.NewJWTTokenService(TokenSecret, TokenIssuer, time.Hour)
	require.NoError(t, err)
	return svc
}

// IssueToken signs a token for subject carrying roles with svc.
func IssueToken(t testing.TB, svc service.TokenService, subject uuid.UUID, roles ...string) string {
	t.Helper()

	token, err := svc.Issue(subject, roles)
	require.NoError(t, err)
	return token
}

// StaticDirectory maps manager ids to the project they run.
type StaticDirectory map[uuid.UUID]*authDomain.Project

// ProjectManagedBy implements authDomain.ProjectDirectory.
func (d StaticDirectory) ProjectManagedBy(
	ctx context.Context,
	managerID authDomain.PrincipalID,
) (*authDomain.Project, error) {
	project, ok := d[managerID.UUID()]
	if !ok {
		return nil, authDomain.ErrProjectNotFound
	}
	return project, nil
}

// NewPrincipal authenticates a principal for subject carrying roles.
func NewPrincipal(t testing.TB, subject uuid.UUID, roles ...string) *authDomain.Principal {
	t.Helper()

	svc := NewTokenService(t)
	principal, err := authDomain.Authenticate(context.Background(), svc, IssueToken(t, svc, subject, roles...))
	require.NoError(t, err)
	return principal
}

// AllProjects returns the permission derived for an admin.
func AllProjects(t testing.TB) *authDomain.ProjectPermission {
	t.Helper()

	principal := NewPrincipal(t, uuid.Must(uuid.NewV7()), string(authDomain.RoleAdmin))
	perm, err := principal.ProjectPermission(context.Background(), StaticDirectory{})
	require.NoError(t, err)
	return perm
}

// SingleProject returns the permission derived for the manager of projectID.
func SingleProject(t testing.TB, projectID uuid.UUID) *authDomain.ProjectPermission {
	t.Helper()

	managerID := uuid.Must(uuid.NewV7())
	principal := NewPrincipal(t, managerID, string(authDomain.RoleProjectManager))
	directory := StaticDirectory{managerID: {ID: projectID, Name: "test", ManagerID: managerID}}
	perm, err := principal.ProjectPermission(context.Background(), directory)
	require.NoError(t, err)
	return perm
}
