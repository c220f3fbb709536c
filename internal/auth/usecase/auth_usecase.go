package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	"github.com/allisson/custody/internal/database"
	apperrors "github.com/allisson/custody/internal/errors"
)

type authUseCase struct {
	txManager   database.TxManager
	verifier    authDomain.TokenVerifier
	projectRepo ProjectRepository
	logger      *slog.Logger
}

// Authenticate builds a principal from a verified token.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	principal, err := authDomain.Authenticate(ctx, a.verifier, token)
	if err != nil {
		a.logger.DebugContext(ctx, "authentication rejected", slog.Any("error", err))
		return nil, err
	}
	return principal, nil
}

// ProjectPermission derives the principal's project scope and logs the decision.
func (a *authUseCase) ProjectPermission(
	ctx context.Context,
	principal *authDomain.Principal,
) (*authDomain.ProjectPermission, error) {
	if principal == nil {
		return nil, authDomain.ErrAuthFailure
	}

	perm, err := principal.ProjectPermission(ctx, a.projectRepo)
	if err != nil {
		a.logger.DebugContext(ctx, "project permission denied",
			slog.String("principal_id", principal.ID().String()),
			slog.Any("roles", principal.Roles()),
			slog.Any("error", err),
		)
		return nil, err
	}

	a.logger.DebugContext(ctx, "project permission granted",
		slog.String("principal_id", principal.ID().String()),
		slog.String("scope", perm.String()),
	)
	return perm, nil
}

// Profile reads the principal's own data.
func (a *authUseCase) Profile(ctx context.Context, principal *authDomain.Principal) (*authDomain.Profile, error) {
	if principal == nil {
		return nil, authDomain.ErrAuthFailure
	}

	profile, err := principal.Profile(ctx, a.projectRepo)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read profile")
	}
	return profile, nil
}

// CreateProject creates a project for managerID.
func (a *authUseCase) CreateProject(
	ctx context.Context,
	name string,
	managerID uuid.UUID,
) (*authDomain.Project, error) {
	project, err := authDomain.NewProject(name, managerID)
	if err != nil {
		return nil, err
	}

	err = a.txManager.WithTx(ctx, func(ctx context.Context) error {
		return a.projectRepo.Create(ctx, project)
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create project")
	}
	return project, nil
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	txManager database.TxManager,
	verifier authDomain.TokenVerifier,
	projectRepo ProjectRepository,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		txManager:   txManager,
		verifier:    verifier,
		projectRepo: projectRepo,
		logger:      logger,
	}
}
