package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/custody/internal/auth/domain"
	authService "github.com/allisson/custody/internal/auth/service"
	authUseCase "github.com/allisson/custody/internal/auth/usecase"
)

type projectOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ManagerID string    `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RunCreateProject registers a project and assigns its manager.
func RunCreateProject(
	ctx context.Context,
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	managerID string,
	format string,
) error {
	manager, err := uuid.Parse(managerID)
	if err != nil {
		return fmt.Errorf("invalid manager id %q: %w", managerID, err)
	}

	project, err := authUseCase.CreateProject(ctx, name, manager)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	logger.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("manager_id", project.ManagerID.String()),
	)

	output := projectOutput{
		ID:        project.ID.String(),
		Name:      project.Name,
		ManagerID: project.ManagerID.String(),
		CreatedAt: project.CreatedAt,
	}
	return writeResult(writer, format, output, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Project created successfully!")
		_, _ = fmt.Fprintf(w, "Project ID: %s\n", output.ID)
		_, _ = fmt.Fprintf(w, "Manager ID: %s\n", output.ManagerID)
	})
}

// RunIssueToken signs a bearer token for subject. Every role must be a known role name.
func RunIssueToken(
	tokenService authService.TokenService,
	logger *slog.Logger,
	writer io.Writer,
	subject string,
	roles []string,
	format string,
) error {
	subjectID, err := uuid.Parse(subject)
	if err != nil {
		return fmt.Errorf("invalid subject %q: %w", subject, err)
	}

	for _, name := range roles {
		if _, ok := authDomain.ParseRole(name); !ok {
			return fmt.Errorf(
				"invalid role: %s (valid options: %s, %s, %s)",
				name,
				authDomain.RoleAdmin,
				authDomain.RoleProjectManager,
				authDomain.RoleAccountant,
			)
		}
	}

	token, err := tokenService.Issue(subjectID, roles)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued",
		slog.String("subject", subjectID.String()),
		slog.String("roles", strings.Join(roles, ",")),
	)

	output := map[string]string{"subject": subjectID.String(), "token": token}
	return writeResult(writer, format, output, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Subject: %s\n", subjectID.String())
		_, _ = fmt.Fprintf(w, "Token: %s\n", token)
	})
}
