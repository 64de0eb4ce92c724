package repository

import (
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Pool sizing for the passmint API. Credential reads dominate, so the
// pool is small; connections are recycled to survive MySQL-side idle
// timeouts.
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// NewDB opens the MySQL pool backing the user and credential stores.
// A failed ping is logged but not fatal: the server still serves the
// stateless generator and strength endpoints without a database.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed, continuing without it", "error", err)
	}

	return db, nil
}
