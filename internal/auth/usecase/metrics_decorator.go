package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/errors"
	"github.com/allisson/custody/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for token authentication.
func (a *authUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	start := time.Now()
	principal, err := a.next.Authenticate(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "auth_authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "auth_authenticate", time.Since(start), status)

	return principal, err
}

// ProjectPermission records metrics for permission derivation. Absence counts as "denied".
func (a *authUseCaseWithMetrics) ProjectPermission(
	ctx context.Context,
	principal *authDomain.Principal,
) (*authDomain.ProjectPermission, error) {
	start := time.Now()
	perm, err := a.next.ProjectPermission(ctx, principal)

	status := "success"
	switch {
	case isAbsence(err):
		status = "denied"
	case err != nil:
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "auth_project_permission", status)
	a.metrics.RecordDuration(ctx, "auth", "auth_project_permission", time.Since(start), status)

	return perm, err
}

// Profile records metrics for the principal's self read.
func (a *authUseCaseWithMetrics) Profile(
	ctx context.Context,
	principal *authDomain.Principal,
) (*authDomain.Profile, error) {
	start := time.Now()
	profile, err := a.next.Profile(ctx, principal)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "auth_profile", status)
	a.metrics.RecordDuration(ctx, "auth", "auth_profile", time.Since(start), status)

	return profile, err
}

// CreateProject records metrics for project creation.
func (a *authUseCaseWithMetrics) CreateProject(
	ctx context.Context,
	name string,
	managerID uuid.UUID,
) (*authDomain.Project, error) {
	start := time.Now()
	project, err := a.next.CreateProject(ctx, name, managerID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "auth_project_create", status)
	a.metrics.RecordDuration(ctx, "auth", "auth_project_create", time.Since(start), status)

	return project, err
}

func isAbsence(err error) bool {
	return errors.Is(err, authDomain.ErrNoProjectPermission)
}
