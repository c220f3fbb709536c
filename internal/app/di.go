// Package app provides the dependency injection container that assembles application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	accountRepository "github.com/allisson/custody/internal/account/repository"
	accountUseCase "github.com/allisson/custody/internal/account/usecase"
	authService "github.com/allisson/custody/internal/auth/service"
	authUseCase "github.com/allisson/custody/internal/auth/usecase"
	"github.com/allisson/custody/internal/config"
	customerUseCase "github.com/allisson/custody/internal/customer/usecase"
	"github.com/allisson/custody/internal/database"
	"github.com/allisson/custody/internal/http"
	"github.com/allisson/custody/internal/metrics"
)

// Storage drivers accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

// ErrNoDatabase is returned by DB when the memory driver is configured.
var ErrNoDatabase = errors.New("memory driver has no database connection")

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	config *config.Config

	// background is cancelled on Shutdown. It bounds the startup ping and middleware goroutines.
	background context.Context
	cancel     context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Account
	accountStore      accountRepository.AccountStore
	accountRepository *accountRepository.AccountRepository
	accountUseCase    accountUseCase.AccountUseCase

	// Auth
	tokenService      authService.TokenService
	projectRepository authUseCase.ProjectRepository
	authUseCase       authUseCase.AuthUseCase

	// Customer
	customerRepository customerUseCase.CustomerRepository
	customerUseCase    customerUseCase.CustomerUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	loggerInit             sync.Once
	dbInit                 sync.Once
	txManagerInit          sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	accountStoreInit       sync.Once
	accountRepositoryInit  sync.Once
	accountUseCaseInit     sync.Once
	tokenServiceInit       sync.Once
	projectRepositoryInit  sync.Once
	authUseCaseInit        sync.Once
	customerRepositoryInit sync.Once
	customerUseCaseInit    sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once

	mu         sync.Mutex
	initErrors map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	background, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		background: background,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection. The memory driver has none and returns ErrNoDatabase.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		var err error
		c.db, err = c.initDB()
		c.setInitError("db", err)
	})
	return c.db, c.initError("db")
}

// TxManager returns the transaction manager. The memory driver gets a no-op manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		var err error
		c.txManager, err = c.initTxManager()
		c.setInitError("txManager", err)
	})
	return c.txManager, c.initError("txManager")
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		var err error
		c.metricsProvider, err = c.initMetricsProvider()
		c.setInitError("metricsProvider", err)
	})
	return c.metricsProvider, c.initError("metricsProvider")
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		var err error
		c.businessMetrics, err = c.initBusinessMetrics()
		c.setInitError("businessMetrics", err)
	})
	return c.businessMetrics, c.initError("businessMetrics")
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		var err error
		c.httpServer, err = c.initHTTPServer()
		c.setInitError("httpServer", err)
	})
	return c.httpServer, c.initError("httpServer")
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		var err error
		c.metricsServer, err = c.initMetricsServer()
		c.setInitError("metricsServer", err)
	})
	return c.metricsServer, c.initError("metricsServer")
}

// Shutdown stops servers, flushes metrics and closes the database. It is safe to call even if
// nothing was initialized.
func (c *Container) Shutdown(ctx context.Context) error {
	c.cancel()

	var errs []error
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server: %w", err))
		}
	}
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider: %w", err))
		}
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}

	return errors.Join(errs...)
}

// setInitError records a failed initialization so later calls return the same error.
func (c *Container) setInitError(name string, err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

// initError returns the stored initialization error for name.
func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	switch c.config.DBDriver {
	case DriverMemory:
		return nil, ErrNoDatabase
	case DriverPostgres, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := database.Connect(c.background, database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	if c.config.DBDriver == DriverMemory {
		return database.NewNoopTxManager(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace, metrics.WithRuntimeCollectors())
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// memoryPinger reports the memory driver as always reachable.
type memoryPinger struct{}

func (memoryPinger) PingContext(ctx context.Context) error {
	return nil
}

// initHTTPServer creates the API server and wires every handler into its router.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	var pinger http.Pinger = memoryPinger{}
	if c.config.DBDriver != DriverMemory {
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for http server: %w", err)
		}
		pinger = db
	}

	accountHandler, err := c.AccountHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get account handler for http server: %w", err)
	}

	customerHandler, err := c.CustomerHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer handler for http server: %w", err)
	}

	profileHandler, err := c.ProfileHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile handler for http server: %w", err)
	}

	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(pinger, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(c.background, c.config, accountHandler, customerHandler, profileHandler, authUC, provider)
	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
