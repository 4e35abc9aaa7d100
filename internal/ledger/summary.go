package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/mmynk/profitshare/internal/calculator"
	"github.com/mmynk/profitshare/internal/models"
)

// Summary loads the current records and reconciles them. Transactions are
// limited to r; payments are never filtered by date.
//
// Each call reads a fresh snapshot, so a payment recorded a moment earlier
// is always reflected.
func (l *Ledger) Summary(ctx context.Context, r calculator.DateRange) (*calculator.FinancialSummary, error) {
	start := l.now()
	summary, err := l.summary(ctx, r)
	if l.observer != nil {
		periods := 0
		if summary != nil {
			periods = len(summary.MonthlyCalculations)
		}
		l.observer.ObserveSummary(l.now().Sub(start), periods, err)
	}
	return summary, err
}

func (l *Ledger) summary(ctx context.Context, r calculator.DateRange) (*calculator.FinancialSummary, error) {
	stakeholders, err := l.store.ListStakeholders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stakeholders: %w", err)
	}
	payments, err := l.store.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	txs, err := l.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	// Period keys follow the ledger's calendar, not the server's.
	local := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		tx.Date = tx.Date.In(l.loc)
		local[i] = tx
	}

	// Payments are reconciled in the order they were recorded.
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].ID < payments[j].ID
	})

	summary, err := calculator.BuildSummary(calculator.SummaryInput{
		Transactions: local,
		Stakeholders: stakeholders,
		Payments:     payments,
		Range:        r,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}
	return summary, nil
}
