// Package calculator implements the reconciliation engine: it groups
// transactions into monthly periods, splits positive balances equally across
// active stakeholders and nets the shares against recorded payments.
//
// Everything here is a pure function of its inputs. Loading records is the
// caller's job.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/models"
)

// MonthlyCalculation is the reconciliation of one period.
type MonthlyCalculation struct {
	Month   string
	Profit  decimal.Decimal
	Cost    decimal.Decimal
	Balance decimal.Decimal

	// StakeholderShares maps stakeholder ID to their share of Balance.
	StakeholderShares map[int64]decimal.Decimal

	// StakeholderPayments maps stakeholder ID to their position against
	// period-scoped payments for this month.
	StakeholderPayments map[int64]PaymentStatus
}

// FinancialSummary is the full reconciliation result handed to API layers.
type FinancialSummary struct {
	TotalProfit  decimal.Decimal
	TotalCost    decimal.Decimal
	TotalBalance decimal.Decimal

	// Stakeholders are the active stakeholders the balances were split across.
	Stakeholders []models.Stakeholder

	// StakeholderTotals is the cumulative share per stakeholder over all periods.
	StakeholderTotals map[int64]decimal.Decimal

	// StakeholderBalances nets StakeholderTotals against global payments.
	StakeholderBalances map[int64]StakeholderBalance

	// MonthlyCalculations are ordered chronologically.
	MonthlyCalculations []MonthlyCalculation
}

// SummaryInput is everything BuildSummary needs.
type SummaryInput struct {
	Transactions []models.Transaction
	Stakeholders []models.Stakeholder // inactive ones are ignored
	Payments     []models.Payment
	Range        DateRange
}

// BuildSummary computes the financial summary.
//
// Algorithm:
//   - Filter transactions to Range and group them by period key
//   - For each period in chronological order: split a positive balance
//     equally across active stakeholders, then net each share against the
//     period-scoped payments for that stakeholder and month
//   - For each active stakeholder: net the sum of their period shares
//     against their global payments
//
// The two payment ledgers never mix: a global payment does not reduce any
// period's remaining amount and a period-scoped payment does not reduce the
// cumulative one. BuildSummary either returns a complete summary or an error.
func BuildSummary(in SummaryInput) (*FinancialSummary, error) {
	active := ActiveStakeholders(in.Stakeholders)
	global, scoped := PartitionPayments(in.Payments)

	agg := Aggregate(FilterByDateRange(in.Transactions, in.Range))
	keys := agg.Keys()

	if len(keys) > 0 && len(active) == 0 {
		return nil, fmt.Errorf("failed to allocate %d periods: %w", len(keys), ErrNoActiveStakeholders)
	}

	totals := make(map[int64]decimal.Decimal, len(active))
	for _, s := range active {
		totals[s.ID] = decimal.Zero
	}

	monthly := make([]MonthlyCalculation, 0, len(keys))
	for _, key := range keys {
		p := agg.Periods[key]

		shares, err := AllocatePeriod(p.Balance, active)
		if err != nil {
			return nil, fmt.Errorf("failed to allocate period %s: %w", key, err)
		}

		statuses := make(map[int64]PaymentStatus, len(active))
		for _, s := range active {
			share := shares[s.ID]
			totals[s.ID] = totals[s.ID].Add(share)
			statuses[s.ID] = ReconcilePeriod(share, s.ID, key, scoped)
		}

		monthly = append(monthly, MonthlyCalculation{
			Month:               key,
			Profit:              p.Profit,
			Cost:                p.Cost,
			Balance:             p.Balance,
			StakeholderShares:   shares,
			StakeholderPayments: statuses,
		})
	}

	balances := make(map[int64]StakeholderBalance, len(active))
	for _, s := range active {
		balances[s.ID] = ReconcileGlobal(totals[s.ID], s.ID, global)
	}

	return &FinancialSummary{
		TotalProfit:         agg.TotalProfit,
		TotalCost:           agg.TotalCost,
		TotalBalance:        agg.TotalBalance(),
		Stakeholders:        active,
		StakeholderTotals:   totals,
		StakeholderBalances: balances,
		MonthlyCalculations: monthly,
	}, nil
}
