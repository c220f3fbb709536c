package app

import (
	"fmt"

	authHTTP "github.com/allisson/custody/internal/auth/http"
	authRepository "github.com/allisson/custody/internal/auth/repository"
	authService "github.com/allisson/custody/internal/auth/service"
	authUseCase "github.com/allisson/custody/internal/auth/usecase"
)

// TokenService returns the JWT service used to verify and issue bearer tokens.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		var err error
		c.tokenService, err = authService.NewJWTTokenService(
			c.config.AuthTokenSecret,
			c.config.AuthTokenIssuer,
			c.config.AuthTokenExpiration,
		)
		c.setInitError("tokenService", err)
	})
	return c.tokenService, c.initError("tokenService")
}

// ProjectRepository returns the project repository for the configured driver.
func (c *Container) ProjectRepository() (authUseCase.ProjectRepository, error) {
	c.projectRepositoryInit.Do(func() {
		var err error
		c.projectRepository, err = c.initProjectRepository()
		c.setInitError("projectRepository", err)
	})
	return c.projectRepository, c.initError("projectRepository")
}

// AuthUseCase returns the auth use case decorated with metrics.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		var err error
		c.authUseCase, err = c.initAuthUseCase()
		c.setInitError("authUseCase", err)
	})
	return c.authUseCase, c.initError("authUseCase")
}

// ProfileHandler returns the HTTP handler for the caller's own data.
func (c *Container) ProfileHandler() (*authHTTP.ProfileHandler, error) {
	useCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for profile handler: %w", err)
	}
	return authHTTP.NewProfileHandler(useCase, c.Logger()), nil
}

func (c *Container) initProjectRepository() (authUseCase.ProjectRepository, error) {
	if c.config.DBDriver == DriverMemory {
		return authRepository.NewMemoryProjectRepository(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for project repository: %w", err)
	}

	switch c.config.DBDriver {
	case DriverPostgres:
		return authRepository.NewPostgreSQLProjectRepository(db), nil
	case DriverMySQL:
		return authRepository.NewMySQLProjectRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for auth use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
	}

	return authUseCase.NewAuthUseCaseWithMetrics(
		authUseCase.NewAuthUseCase(txManager, tokenService, projectRepo, c.Logger()),
		businessMetrics,
	), nil
}
