// Package sqlstore implements storage.Store on top of database/sql.
//
// Queries are written with "?" placeholders; a Dialect rewrites them for
// drivers that use another style and maps driver errors onto the storage
// sentinel errors. The sqlite and postgres packages provide the dialects.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/profitshare/internal/storage"
)

// Dialect captures what differs between SQL backends.
type Dialect struct {
	// Name identifies the backend in logs.
	Name string

	// Rebind rewrites "?" placeholders. Nil leaves queries unchanged.
	Rebind func(query string) string

	// Classify wraps driver errors with storage.ErrTransient or
	// storage.ErrConflict where appropriate. Nil leaves errors unchanged.
	Classify func(err error) error
}

// Store implements storage.Store over a *sql.DB.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// New wraps an open database whose schema is already migrated.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Migrate executes schema statements on db.
func Migrate(ctx context.Context, db *sql.DB, schema string) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Dialect returns the backend name.
func (s *Store) Dialect() string {
	return s.dialect.Name
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) q(query string) string {
	if s.dialect.Rebind == nil {
		return query
	}
	return s.dialect.Rebind(query)
}

// fail classifies a driver error and prefixes it with msg.
func (s *Store) fail(err error, msg string) error {
	if s.dialect.Classify != nil {
		err = s.dialect.Classify(err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// inTx runs fn inside a database transaction and commits if fn succeeds.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.fail(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return s.fail(err, "failed to commit transaction")
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
