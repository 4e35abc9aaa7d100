// Package cli implements the ledgerctl subcommands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"github.com/mmynk/profitshare/internal/ledger"
)

// OpenFunc opens a ledger and returns a function releasing it.
type OpenFunc func(ctx context.Context) (*ledger.Ledger, func() error, error)

// Env is shared by every command.
type Env struct {
	Open     OpenFunc
	Out      io.Writer
	Err      io.Writer
	Currency string
}

// Register adds the ledgerctl commands to c.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&summaryCmd{env: env}, "reports")
	c.Register(&paymentsCmd{env: env}, "reports")

	c.Register(&addTransactionCmd{env: env}, "records")
	c.Register(&addStakeholderCmd{env: env}, "records")
	c.Register(&recordPaymentCmd{env: env}, "records")

	c.Register(&seedCmd{env: env}, "maintenance")
}

// withLedger opens the ledger, runs fn and maps its error to an exit status.
func (e *Env) withLedger(ctx context.Context, fn func(l *ledger.Ledger) error) subcommands.ExitStatus {
	l, closeFn, err := e.Open(ctx)
	if err != nil {
		fmt.Fprintf(e.Err, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	if err := fn(l); err != nil {
		fmt.Fprintf(e.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
