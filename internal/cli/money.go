package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatAmount renders d in the currency's notation, rounded to its minor
// unit. Unknown codes fall back to USD.
func formatAmount(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
