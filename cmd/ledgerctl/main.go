// Command ledgerctl inspects and edits the profit-sharing ledger from the
// command line. It reads the same environment as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mmynk/profitshare/internal/app"
	"github.com/mmynk/profitshare/internal/audit"
	"github.com/mmynk/profitshare/internal/cli"
	"github.com/mmynk/profitshare/internal/config"
	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	logging.SetupWith(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	// Seeding is an explicit command here.
	cfg.SeedDefaults = false

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, &cli.Env{
		Open:     opener(cfg),
		Out:      os.Stdout,
		Err:      os.Stderr,
		Currency: cfg.Currency,
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func opener(cfg *config.Config) cli.OpenFunc {
	return func(ctx context.Context) (*ledger.Ledger, func() error, error) {
		store, err := app.OpenStore(ctx, cfg, nil)
		if err != nil {
			return nil, nil, err
		}
		worker := audit.NewWorker(store, 16)
		worker.Start()

		l, err := app.NewLedger(ctx, cfg, store, ledger.WithAuditLogger(worker))
		if err != nil {
			worker.Shutdown()
			store.Close()
			return nil, nil, err
		}

		closeFn := func() error {
			worker.Shutdown()
			return store.Close()
		}
		return l, closeFn, nil
	}
}
