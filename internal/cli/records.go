package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/wire"
	"github.com/mmynk/profitshare/pkg/api"
)

type addTransactionCmd struct {
	env         *Env
	typ         string
	amount      string
	date        string
	description string
}

func (*addTransactionCmd) Name() string     { return "add-transaction" }
func (*addTransactionCmd) Synopsis() string { return "record a profit or a cost" }
func (*addTransactionCmd) Usage() string {
	return `add-transaction -type profit|cost -amount <amount> -date YYYY-MM-DD -description <text>
`
}

func (c *addTransactionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "profit or cost (required)")
	f.StringVar(&c.amount, "amount", "", "positive amount (required)")
	f.StringVar(&c.date, "date", "", "transaction date (required)")
	f.StringVar(&c.description, "description", "", "what the transaction was for (required)")
}

func (c *addTransactionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := wire.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return c.env.withLedger(ctx, func(l *ledger.Ledger) error {
		tx, err := wire.NewTransaction(l, &api.CreateTransactionRequest{
			Type:        c.typ,
			Amount:      amount,
			Date:        c.date,
			Description: c.description,
		})
		if err != nil {
			return err
		}
		if err := l.CreateTransaction(ctx, tx); err != nil {
			return err
		}
		fmt.Fprintf(c.env.Out, "Added %s #%d of %s on %s\n", tx.Type, tx.ID,
			formatAmount(tx.Amount, c.env.Currency), tx.Date.In(l.Location()).Format("2006-01-02"))
		return nil
	})
}

type addStakeholderCmd struct {
	env      *Env
	name     string
	inactive bool
}

func (*addStakeholderCmd) Name() string     { return "add-stakeholder" }
func (*addStakeholderCmd) Synopsis() string { return "add a stakeholder" }
func (*addStakeholderCmd) Usage() string {
	return `add-stakeholder -name <name> [-inactive]
`
}

func (c *addStakeholderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "unique stakeholder name (required)")
	f.BoolVar(&c.inactive, "inactive", false, "create the stakeholder without a share")
}

func (c *addStakeholderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withLedger(ctx, func(l *ledger.Ledger) error {
		sh := &models.Stakeholder{Name: c.name, Active: !c.inactive}
		if err := l.CreateStakeholder(ctx, sh); err != nil {
			return err
		}
		fmt.Fprintf(c.env.Out, "Added stakeholder #%d %s\n", sh.ID, sh.Name)
		return nil
	})
}

type recordPaymentCmd struct {
	env         *Env
	stakeholder int64
	amount      string
	date        string
	month       string
	global      bool
	notes       string
}

func (*recordPaymentCmd) Name() string     { return "record-payment" }
func (*recordPaymentCmd) Synopsis() string { return "record a payment to a stakeholder" }
func (*recordPaymentCmd) Usage() string {
	return `record-payment -stakeholder <id> -amount <amount> -date YYYY-MM-DD [-month YYYY-M | -global] [-notes <text>]

  A payment with -month settles that month's share. A payment without
  -month, or with -global, settles the cumulative share.
`
}

func (c *recordPaymentCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.stakeholder, "stakeholder", 0, "stakeholder id (required)")
	f.StringVar(&c.amount, "amount", "", "positive amount (required)")
	f.StringVar(&c.date, "date", "", "payment date (required)")
	f.StringVar(&c.month, "month", "", "month the payment settles")
	f.BoolVar(&c.global, "global", false, "settle the cumulative share")
	f.StringVar(&c.notes, "notes", "", "free text")
}

func (c *recordPaymentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := wire.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(c.env.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return c.env.withLedger(ctx, func(l *ledger.Ledger) error {
		p, err := wire.NewPayment(l, &api.RecordPaymentRequest{
			StakeholderID:   c.stakeholder,
			Amount:          amount,
			Date:            c.date,
			Notes:           c.notes,
			Month:           c.month,
			IsGlobalPayment: c.global,
		}, "ledgerctl")
		if err != nil {
			return err
		}
		if err := l.RecordPayment(ctx, p); err != nil {
			return err
		}

		fmt.Fprintf(c.env.Out, "Recorded payment #%d of %s to stakeholder #%d (%s)\n",
			p.ID, formatAmount(p.Amount, c.env.Currency), p.StakeholderID, scope(*p))
		return nil
	})
}
