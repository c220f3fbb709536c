package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

const (
	// pgLockNotAvailable is raised by SELECT ... FOR UPDATE NOWAIT on a held row.
	pgLockNotAvailable = "55P03"
	// pgUniqueViolation is raised on duplicate primary or unique keys.
	pgUniqueViolation = "23505"
	// pgForeignKeyViolation is raised when a referenced row does not exist.
	pgForeignKeyViolation = "23503"

	// mysqlLockNowait is raised by SELECT ... FOR UPDATE NOWAIT on a held row.
	mysqlLockNowait = 3572
	// mysqlLockWaitTimeout is raised when innodb_lock_wait_timeout expires.
	mysqlLockWaitTimeout = 1205
	// mysqlDuplicateEntry is raised on duplicate primary or unique keys.
	mysqlDuplicateEntry = 1062
	// mysqlNoReferencedRow is raised when a referenced row does not exist.
	mysqlNoReferencedRow = 1452
)

// IsLockNotAvailable reports whether err is a driver error meaning the row lock is held elsewhere.
func IsLockNotAvailable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgLockNotAvailable
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlLockNowait || mysqlErr.Number == mysqlLockWaitTimeout
	}

	return false
}

// IsUniqueViolation reports whether err is a driver error for a duplicate key.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	return false
}

// IsForeignKeyViolation reports whether err is a driver error for a missing referenced row.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgForeignKeyViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlNoReferencedRow
	}

	return false
}
