package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "load default configuration",
			envVars: map[string]string{
				"DB_DRIVER": "postgres",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "postgres", cfg.DBDriver)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "custody", cfg.AuthTokenIssuer)
				assert.Equal(t, 14400*time.Second, cfg.AuthTokenExpiration)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"DB_DRIVER":                    "mysql",
				"DB_CONNECTION_STRING":         "user:password@tcp(localhost:3306)/custody",
				"DB_MAX_OPEN_CONNECTIONS":      "50",
				"DB_MAX_IDLE_CONNECTIONS":      "10",
				"DB_CONN_MAX_LIFETIME_MINUTES": "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.DBDriver)
				assert.Equal(t, "user:password@tcp(localhost:3306)/custody", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
			},
		},
		{
			name: "load custom auth configuration",
			envVars: map[string]string{
				"AUTH_TOKEN_SECRET":             "s3cr3t",
				"AUTH_TOKEN_ISSUER":             "custody-test",
				"AUTH_TOKEN_EXPIRATION_SECONDS": "60",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "s3cr3t", cfg.AuthTokenSecret)
				assert.Equal(t, "custody-test", cfg.AuthTokenIssuer)
				assert.Equal(t, time.Minute, cfg.AuthTokenExpiration)
			},
		},
		{
			name: "load custom rate limit configuration",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
				"RATE_LIMIT_BURST":            "4",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 4, cfg.RateLimitBurst)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
