package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/period"
)

// PeriodTotals holds the sums of one calendar month.
type PeriodTotals struct {
	Month   string
	Profit  decimal.Decimal
	Cost    decimal.Decimal
	Balance decimal.Decimal // Profit - Cost, may be negative
}

// Aggregation is the result of grouping transactions by period.
type Aggregation struct {
	// Periods maps a period key to its totals. Only periods with at least one
	// transaction are present.
	Periods map[string]*PeriodTotals

	TotalProfit decimal.Decimal
	TotalCost   decimal.Decimal
}

// TotalBalance is TotalProfit - TotalCost.
func (a Aggregation) TotalBalance() decimal.Decimal {
	return a.TotalProfit.Sub(a.TotalCost)
}

// Keys returns the period keys in chronological order.
func (a Aggregation) Keys() []string {
	keys := make([]string, 0, len(a.Periods))
	for k := range a.Periods {
		keys = append(keys, k)
	}
	period.Sort(keys)
	return keys
}

// Aggregate groups transactions by the period key of their date and sums
// profit and cost per period and overall.
func Aggregate(txs []models.Transaction) Aggregation {
	agg := Aggregation{
		Periods:     make(map[string]*PeriodTotals),
		TotalProfit: decimal.Zero,
		TotalCost:   decimal.Zero,
	}

	for _, tx := range txs {
		key := period.KeyOf(tx.Date)
		totals, ok := agg.Periods[key]
		if !ok {
			totals = &PeriodTotals{
				Month:  key,
				Profit: decimal.Zero,
				Cost:   decimal.Zero,
			}
			agg.Periods[key] = totals
		}

		switch tx.Type {
		case models.TransactionProfit:
			totals.Profit = totals.Profit.Add(tx.Amount)
			agg.TotalProfit = agg.TotalProfit.Add(tx.Amount)
		case models.TransactionCost:
			totals.Cost = totals.Cost.Add(tx.Amount)
			agg.TotalCost = agg.TotalCost.Add(tx.Amount)
		}
	}

	for _, totals := range agg.Periods {
		totals.Balance = totals.Profit.Sub(totals.Cost)
	}

	return agg
}
