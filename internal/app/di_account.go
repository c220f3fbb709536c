package app

import (
	"fmt"

	accountHTTP "github.com/allisson/custody/internal/account/http"
	accountRepository "github.com/allisson/custody/internal/account/repository"
	accountUseCase "github.com/allisson/custody/internal/account/usecase"
)

// AccountStore returns the account store for the configured driver.
func (c *Container) AccountStore() (accountRepository.AccountStore, error) {
	c.accountStoreInit.Do(func() {
		var err error
		c.accountStore, err = c.initAccountStore()
		c.setInitError("accountStore", err)
	})
	return c.accountStore, c.initError("accountStore")
}

// AccountRepository returns the repository that mints locked accounts.
func (c *Container) AccountRepository() (*accountRepository.AccountRepository, error) {
	c.accountRepositoryInit.Do(func() {
		var err error
		c.accountRepository, err = c.initAccountRepository()
		c.setInitError("accountRepository", err)
	})
	return c.accountRepository, c.initError("accountRepository")
}

// AccountUseCase returns the account use case decorated with metrics.
func (c *Container) AccountUseCase() (accountUseCase.AccountUseCase, error) {
	c.accountUseCaseInit.Do(func() {
		var err error
		c.accountUseCase, err = c.initAccountUseCase()
		c.setInitError("accountUseCase", err)
	})
	return c.accountUseCase, c.initError("accountUseCase")
}

// AccountHandler returns the HTTP handler for account endpoints.
func (c *Container) AccountHandler() (*accountHTTP.AccountHandler, error) {
	useCase, err := c.AccountUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get account use case for account handler: %w", err)
	}
	return accountHTTP.NewAccountHandler(useCase, c.Logger()), nil
}

func (c *Container) initAccountStore() (accountRepository.AccountStore, error) {
	if c.config.DBDriver == DriverMemory {
		return accountRepository.NewMemoryAccountStore(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for account store: %w", err)
	}

	switch c.config.DBDriver {
	case DriverPostgres:
		return accountRepository.NewPostgreSQLAccountStore(db), nil
	case DriverMySQL:
		return accountRepository.NewMySQLAccountStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAccountRepository reports lock events to both the log and the lock event counter.
func (c *Container) initAccountRepository() (*accountRepository.AccountRepository, error) {
	store, err := c.AccountStore()
	if err != nil {
		return nil, err
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for account repository: %w", err)
	}

	sink := accountRepository.NewMultiEventSink(
		accountRepository.NewLoggerEventSink(c.Logger()),
		accountRepository.NewMetricsEventSink(businessMetrics),
	)
	return accountRepository.NewAccountRepository(store, sink), nil
}

func (c *Container) initAccountUseCase() (accountUseCase.AccountUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for account use case: %w", err)
	}

	repo, err := c.AccountRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for account use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for account use case: %w", err)
	}

	return accountUseCase.NewAccountUseCaseWithMetrics(
		accountUseCase.NewAccountUseCase(txManager, repo),
		businessMetrics,
	), nil
}
