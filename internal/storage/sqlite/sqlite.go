// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/profitshare/internal/storage"
	"github.com/mmynk/profitshare/internal/storage/sqlstore"
)

// dsnParams enables foreign keys on every pooled connection, waits on
// locks instead of failing at once and takes the write lock when a
// transaction begins.
const dsnParams = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"

// Dialect is the SQLite flavour of sqlstore. Placeholders need no rewriting.
var Dialect = sqlstore.Dialect{
	Name:     "sqlite",
	Classify: classify,
}

// New opens the database at dbPath, creating parent directories and
// running migrations.
func New(dbPath string) (*sqlstore.Store, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlstore.Migrate(context.Background(), db, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return sqlstore.New(db, Dialect), nil
}

// classify maps busy and locked databases to storage.ErrTransient and
// unique violations to storage.ErrConflict.
func classify(err error) error {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return err
	}

	code := serr.Code()
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %w", storage.ErrConflict, err)
	case code&0xff == sqlite3.SQLITE_BUSY, code&0xff == sqlite3.SQLITE_LOCKED:
		return fmt.Errorf("%w: %w", storage.ErrTransient, err)
	}
	return err
}
