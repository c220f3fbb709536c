// Package database opens the SQL pool shared by the account, project and customer stores and
// runs their transactions.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

const defaultPingTimeout = 5 * time.Second

// Config is the pool setup read from the DB_* settings.
type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration

	// PingTimeout bounds the startup reachability check. Zero means five seconds.
	PingTimeout time.Duration
}

// Connect opens a pool for cfg.Driver and checks the server answers within PingTimeout.
// MySQL connection strings always get parseTime so DATETIME columns scan into time.Time.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	dsn, err := dataSourceName(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s pool: %w", cfg.Driver, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s unreachable: %w", cfg.Driver, err)
	}
	return db, nil
}

func dataSourceName(driver, dsn string) (string, error) {
	switch driver {
	case "postgres":
		return dsn, nil
	case "mysql":
		parsed, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid mysql connection string: %w", err)
		}
		parsed.ParseTime = true
		return parsed.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}
