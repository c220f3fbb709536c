// Package http provides the API server, the metrics server and their shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accountHTTP "github.com/allisson/custody/internal/account/http"
	authDomain "github.com/allisson/custody/internal/auth/domain"
	authHTTP "github.com/allisson/custody/internal/auth/http"
	authUseCase "github.com/allisson/custody/internal/auth/usecase"
	"github.com/allisson/custody/internal/config"
	customerHTTP "github.com/allisson/custody/internal/customer/http"
	"github.com/allisson/custody/internal/metrics"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server is the API server.
type Server struct {
	db     Pinger
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(db Pinger, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes.
//
// Every /v1 route requires a bearer token, and /v1/me needs nothing more. Withdrawals require
// the admin or accountant role, opening accounts requires admin and registering customers
// requires admin or projectManager.
// ctx bounds background work started by middleware.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	accountHandler *accountHTTP.AccountHandler,
	customerHandler *customerHTTP.CustomerHandler,
	profileHandler *authHTTP.ProfileHandler,
	authUC authUseCase.AuthUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(authUC, s.logger))
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	v1.GET("/me", profileHandler.GetHandler)

	accounts := v1.Group("/accounts")
	{
		accounts.GET("/:id", accountHandler.GetHandler)
		accounts.GET("/:id/entries", accountHandler.ListEntriesHandler)
		accounts.POST("/:id/withdraw",
			authHTTP.RequireRole(s.logger, authDomain.RoleAdmin, authDomain.RoleAccountant),
			accountHandler.WithdrawHandler,
		)
		accounts.POST("",
			authHTTP.RequireRole(s.logger, authDomain.RoleAdmin),
			accountHandler.OpenHandler,
		)
	}

	customers := v1.Group("/customers")
	{
		customers.GET("", customerHandler.ListHandler)
		customers.POST("",
			authHTTP.RequireRole(s.logger, authDomain.RoleAdmin, authDomain.RoleProjectManager),
			customerHandler.CreateHandler,
		)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports 503 until the store answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
