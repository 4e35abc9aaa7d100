package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/models"
)

type paymentsCmd struct {
	env         *Env
	stakeholder int64
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "list payments, newest first" }
func (*paymentsCmd) Usage() string {
	return `payments [-stakeholder <id>]

  Lists every payment, or one stakeholder's payment history.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.stakeholder, "stakeholder", 0, "only this stakeholder's payments")
}

func (c *paymentsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withLedger(ctx, func(l *ledger.Ledger) error {
		var rows []ledger.PaymentDetail
		if c.stakeholder != 0 {
			detail, err := l.GetStakeholder(ctx, c.stakeholder)
			if err != nil {
				return err
			}
			for _, p := range detail.Payments {
				rows = append(rows, ledger.PaymentDetail{Payment: p, Stakeholder: detail.Stakeholder})
			}
		} else {
			var err error
			if rows, err = l.ListPayments(ctx); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(c.env.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSTAKEHOLDER\tAMOUNT\tSCOPE\tNOTES")
		for _, p := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID,
				p.Date.In(l.Location()).Format("2006-01-02"),
				p.Stakeholder.Name,
				formatAmount(p.Amount, c.env.Currency),
				scope(p.Payment),
				p.Notes,
			)
		}
		return w.Flush()
	})
}

func scope(p models.Payment) string {
	if p.IsGlobal() {
		return "global"
	}
	return p.Month
}
