// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Store interface using lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/mmynk/profitshare/internal/storage"
	"github.com/mmynk/profitshare/internal/storage/sqlstore"
)

// Dialect is the PostgreSQL flavour of sqlstore.
var Dialect = sqlstore.Dialect{
	Name:     "postgres",
	Rebind:   rebind,
	Classify: classify,
}

// New connects to the database at dsn and runs migrations.
func New(ctx context.Context, dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := sqlstore.Migrate(ctx, db, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return sqlstore.New(db, Dialect), nil
}

// rebind rewrites "?" placeholders into "$1", "$2", ...
// Queries in this module never contain a literal question mark.
func rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// classify maps serialization failures, lock timeouts and a server that is
// still starting to storage.ErrTransient, and unique violations to
// storage.ErrConflict.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch {
	case pqErr.Code == "23505":
		return fmt.Errorf("%w: %w", storage.ErrConflict, err)
	case pqErr.Code.Class() == "40", pqErr.Code == "55P03", pqErr.Code == "57P03":
		return fmt.Errorf("%w: %w", storage.ErrTransient, err)
	}
	return err
}
