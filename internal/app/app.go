// Package app assembles the store and ledger from a Config. The server and
// the ledgerctl CLI share it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/profitshare/internal/config"
	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/storage"
	"github.com/mmynk/profitshare/internal/storage/postgres"
	"github.com/mmynk/profitshare/internal/storage/sqlite"
)

// OpenStore opens the configured backend and wraps it with the retry
// policy. obs may be nil.
func OpenStore(ctx context.Context, cfg *config.Config, obs storage.RetryObserver) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)
	switch cfg.DBDriver {
	case config.DriverPostgres:
		store, err = postgres.New(ctx, cfg.DatabaseURL)
	default:
		store, err = sqlite.New(cfg.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.DBDriver, err)
	}

	slog.Info("Storage initialized", "driver", cfg.DBDriver, "retry_attempts", cfg.Retry.Attempts)
	return storage.NewRetrying(store, cfg.Retry, obs), nil
}

// NewLedger builds a ledger in the configured time zone and seeds the
// default stakeholders when the config asks for it.
func NewLedger(ctx context.Context, cfg *config.Config, store storage.Store, opts ...ledger.Option) (*ledger.Ledger, error) {
	opts = append([]ledger.Option{ledger.WithLocation(cfg.Location)}, opts...)
	l := ledger.New(store, opts...)

	if cfg.SeedDefaults {
		n, err := l.EnsureDefaultStakeholders(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to seed default stakeholders: %w", err)
		}
		if n > 0 {
			slog.Info("Seeded default stakeholders", "count", n)
		}
	}
	return l, nil
}
