package cli

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/mmynk/profitshare/internal/calculator"
	"github.com/mmynk/profitshare/internal/ledger"
)

type summaryCmd struct {
	env   *Env
	start string
	end   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the financial summary" }
func (*summaryCmd) Usage() string {
	return `summary [-start YYYY-MM-DD] [-end YYYY-MM-DD]

  Prints totals, each month's balance and every active stakeholder's share,
  paid and remaining amounts. Transactions are limited to the range; both
  bounds are inclusive and optional.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "first day to include")
	f.StringVar(&c.end, "end", "", "last day to include")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withLedger(ctx, func(l *ledger.Ledger) error {
		r, err := l.ParseRange(c.start, c.end)
		if err != nil {
			return err
		}
		s, err := l.Summary(ctx, r)
		if err != nil {
			return err
		}
		c.print(s)
		return nil
	})
}

func (c *summaryCmd) print(s *calculator.FinancialSummary) {
	w := tabwriter.NewWriter(c.env.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Total profit\t%s\t\n", formatAmount(s.TotalProfit, c.env.Currency))
	fmt.Fprintf(w, "Total cost\t%s\t\n", formatAmount(s.TotalCost, c.env.Currency))
	fmt.Fprintf(w, "Balance\t%s\t\n", formatAmount(s.TotalBalance, c.env.Currency))
	w.Flush()

	names := make(map[int64]string, len(s.Stakeholders))
	for _, sh := range s.Stakeholders {
		names[sh.ID] = sh.Name
	}

	fmt.Fprintln(c.env.Out)
	w = tabwriter.NewWriter(c.env.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tSTAKEHOLDER\tSHARE\tPAID\tREMAINING")
	for _, m := range s.MonthlyCalculations {
		fmt.Fprintf(w, "%s\t(balance)\t%s\t\t\n", m.Month, formatAmount(m.Balance, c.env.Currency))
		for _, id := range sortedIDs(m.StakeholderShares) {
			st := m.StakeholderPayments[id]
			fmt.Fprintf(w, "\t%s\t%s\t%s\t%s\n", names[id],
				formatAmount(m.StakeholderShares[id], c.env.Currency),
				formatAmount(st.TotalPaid, c.env.Currency),
				formatAmount(st.Remaining, c.env.Currency),
			)
		}
	}
	w.Flush()

	fmt.Fprintln(c.env.Out)
	w = tabwriter.NewWriter(c.env.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STAKEHOLDER\tTOTAL SHARE\tPAID (GLOBAL)\tREMAINING")
	for _, sh := range s.Stakeholders {
		b := s.StakeholderBalances[sh.ID]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sh.Name,
			formatAmount(b.TotalShare, c.env.Currency),
			formatAmount(b.TotalPaid, c.env.Currency),
			formatAmount(b.Remaining, c.env.Currency),
		)
	}
	w.Flush()
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
