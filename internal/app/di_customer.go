package app

import (
	"fmt"

	customerHTTP "github.com/allisson/custody/internal/customer/http"
	customerRepository "github.com/allisson/custody/internal/customer/repository"
	customerUseCase "github.com/allisson/custody/internal/customer/usecase"
)

// CustomerRepository returns the customer repository for the configured driver.
func (c *Container) CustomerRepository() (customerUseCase.CustomerRepository, error) {
	c.customerRepositoryInit.Do(func() {
		var err error
		c.customerRepository, err = c.initCustomerRepository()
		c.setInitError("customerRepository", err)
	})
	return c.customerRepository, c.initError("customerRepository")
}

// CustomerUseCase returns the customer use case decorated with metrics.
func (c *Container) CustomerUseCase() (customerUseCase.CustomerUseCase, error) {
	c.customerUseCaseInit.Do(func() {
		var err error
		c.customerUseCase, err = c.initCustomerUseCase()
		c.setInitError("customerUseCase", err)
	})
	return c.customerUseCase, c.initError("customerUseCase")
}

// CustomerHandler returns the HTTP handler for customer endpoints.
func (c *Container) CustomerHandler() (*customerHTTP.CustomerHandler, error) {
	useCase, err := c.CustomerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer use case for customer handler: %w", err)
	}
	return customerHTTP.NewCustomerHandler(useCase, c.Logger()), nil
}

func (c *Container) initCustomerRepository() (customerUseCase.CustomerRepository, error) {
	if c.config.DBDriver == DriverMemory {
		return customerRepository.NewMemoryCustomerRepository(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for customer repository: %w", err)
	}

	switch c.config.DBDriver {
	case DriverPostgres:
		return customerRepository.NewPostgreSQLCustomerRepository(db), nil
	case DriverMySQL:
		return customerRepository.NewMySQLCustomerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCustomerUseCase derives permissions through the auth use case so denials are counted there too.
func (c *Container) initCustomerUseCase() (customerUseCase.CustomerUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for customer use case: %w", err)
	}

	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for customer use case: %w", err)
	}

	repo, err := c.CustomerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer repository for customer use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for customer use case: %w", err)
	}

	return customerUseCase.NewCustomerUseCaseWithMetrics(
		customerUseCase.NewCustomerUseCase(txManager, authUC, repo, c.Logger()),
		businessMetrics,
	), nil
}
