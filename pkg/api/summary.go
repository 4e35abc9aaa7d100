package api

import "github.com/shopspring/decimal"

// PaymentStatus is a stakeholder's position within one month, counting
// month-scoped payments only.
type PaymentStatus struct {
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Remaining decimal.Decimal `json:"remaining"`
	Payments  []Payment       `json:"payments"`
}

// StakeholderBalance is a stakeholder's cumulative position, counting global
// payments only.
type StakeholderBalance struct {
	TotalShare decimal.Decimal `json:"totalShare"`
	TotalPaid  decimal.Decimal `json:"totalPaid"`
	Remaining  decimal.Decimal `json:"remaining"`
	Payments   []Payment       `json:"payments"`
}

type MonthlyCalculation struct {
	Month               string                    `json:"month"`
	Profit              decimal.Decimal           `json:"profit"`
	Cost                decimal.Decimal           `json:"cost"`
	Balance             decimal.Decimal           `json:"balance"`
	StakeholderShares   map[int64]decimal.Decimal `json:"stakeholderShares"`
	StakeholderPayments map[int64]PaymentStatus   `json:"stakeholderPayments"`
}

// FinancialSummary maps are keyed by stakeholder ID.
type FinancialSummary struct {
	TotalProfit         decimal.Decimal              `json:"totalProfit"`
	TotalCost           decimal.Decimal              `json:"totalCost"`
	TotalBalance        decimal.Decimal              `json:"totalBalance"`
	Stakeholders        []Stakeholder                `json:"stakeholders"`
	StakeholderTotals   map[int64]decimal.Decimal    `json:"stakeholderTotals"`
	StakeholderBalances map[int64]StakeholderBalance `json:"stakeholderBalances"`
	MonthlyCalculations []MonthlyCalculation         `json:"monthlyCalculations"`
}

// GetSummaryRequest bounds are optional YYYY-MM-DD dates, both inclusive.
type GetSummaryRequest struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type GetSummaryResponse struct {
	Summary FinancialSummary `json:"summary"`
}
