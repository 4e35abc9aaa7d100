package calculator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func profit(id int64, amount string, date time.Time) models.Transaction {
	return models.Transaction{ID: id, Type: models.TransactionProfit, Amount: dec(amount), Date: date, Description: "profit"}
}

func cost(id int64, amount string, date time.Time) models.Transaction {
	return models.Transaction{ID: id, Type: models.TransactionCost, Amount: dec(amount), Date: date, Description: "cost"}
}

func assertDecimal(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

// assertClose checks got against want within 1e-9.
func assertClose(t *testing.T, label string, got, want decimal.Decimal) {
	t.Helper()
	if got.Sub(want).Abs().GreaterThan(dec("0.000000001")) {
		t.Errorf("%s = %s, want %s (within 1e-9)", label, got, want)
	}
}
