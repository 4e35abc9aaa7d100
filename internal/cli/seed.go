package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mmynk/profitshare/internal/ledger"
)

type seedCmd struct {
	env          *Env
	transactions bool
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "add default stakeholders and sample data" }
func (*seedCmd) Usage() string {
	return `seed [-transactions=false]

  Adds "Stakeholder 1" and "Stakeholder 2" when no stakeholder exists, and
  sample transactions for the previous two months when there are none.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.transactions, "transactions", true, "also add sample transactions")
}

func (c *seedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withLedger(ctx, func(l *ledger.Ledger) error {
		n, err := l.EnsureDefaultStakeholders(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			fmt.Fprintf(c.env.Out, "Added %d default stakeholders\n", n)
		} else {
			fmt.Fprintln(c.env.Out, "Stakeholders already exist, skipping defaults")
		}

		if !c.transactions {
			return nil
		}
		n, err = l.SeedSampleTransactions(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			fmt.Fprintf(c.env.Out, "Added %d sample transactions\n", n)
		} else {
			fmt.Fprintln(c.env.Out, "Transactions already exist, skipping samples")
		}
		return nil
	})
}
