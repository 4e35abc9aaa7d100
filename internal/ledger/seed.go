package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/models"
)

// SeedSampleTransactions adds a profit and a cost to each of the two months
// before the current one, for demos. It does nothing when any transaction
// exists and returns how many were created.
func (l *Ledger) SeedSampleTransactions(ctx context.Context) (int, error) {
	existing, err := l.ListTransactions(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := l.now().In(l.loc)
	lastMonth := time.Date(now.Year(), now.Month()-1, 15, 12, 0, 0, 0, l.loc)
	twoMonthsAgo := time.Date(now.Year(), now.Month()-2, 10, 12, 0, 0, 0, l.loc)

	samples := []models.Transaction{
		{Type: models.TransactionProfit, Amount: decimal.NewFromInt(5000), Date: lastMonth, Description: "Client project A"},
		{Type: models.TransactionCost, Amount: decimal.NewFromInt(1200), Date: lastMonth.AddDate(0, 0, 5), Description: "Office rent"},
		{Type: models.TransactionProfit, Amount: decimal.NewFromInt(3500), Date: twoMonthsAgo, Description: "Consulting services"},
		{Type: models.TransactionCost, Amount: decimal.NewFromInt(800), Date: twoMonthsAgo.AddDate(0, 0, 5), Description: "Software subscriptions"},
	}
	for i := range samples {
		if err := l.CreateTransaction(ctx, &samples[i]); err != nil {
			return i, err
		}
	}
	return len(samples), nil
}
