package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/models"
)

// PaymentStatus is a stakeholder's position for a single period, computed
// from period-scoped payments only.
type PaymentStatus struct {
	TotalPaid decimal.Decimal
	Remaining decimal.Decimal // share - TotalPaid, negative on overpayment
	Payments  []models.Payment
}

// StakeholderBalance is a stakeholder's cumulative position, computed from
// global payments only.
type StakeholderBalance struct {
	TotalShare decimal.Decimal // sum of the stakeholder's period shares
	TotalPaid  decimal.Decimal
	Remaining  decimal.Decimal // TotalShare - TotalPaid
	Payments   []models.Payment
}

// PartitionPayments splits payments into global ones (flagged global or
// without a month) and period-scoped ones. Order is preserved in both.
func PartitionPayments(payments []models.Payment) (global, scoped []models.Payment) {
	global = make([]models.Payment, 0)
	scoped = make([]models.Payment, 0)
	for _, p := range payments {
		if p.IsGlobal() {
			global = append(global, p)
		} else {
			scoped = append(scoped, p)
		}
	}
	return global, scoped
}

// ReconcilePeriod nets a stakeholder's period share against the
// period-scoped payments tagged with the same stakeholder and month.
// Global payments must not be passed in.
func ReconcilePeriod(share decimal.Decimal, stakeholderID int64, month string, scoped []models.Payment) PaymentStatus {
	status := PaymentStatus{
		TotalPaid: decimal.Zero,
		Payments:  make([]models.Payment, 0),
	}
	for _, p := range scoped {
		if p.StakeholderID == stakeholderID && p.Month == month && !p.IsGlobal() {
			status.TotalPaid = status.TotalPaid.Add(p.Amount)
			status.Payments = append(status.Payments, p)
		}
	}
	status.Remaining = share.Sub(status.TotalPaid)
	return status
}

// ReconcileGlobal nets a stakeholder's cumulative share against their global
// payments. Period-scoped payments never reduce this balance.
func ReconcileGlobal(totalShare decimal.Decimal, stakeholderID int64, global []models.Payment) StakeholderBalance {
	balance := StakeholderBalance{
		TotalShare: totalShare,
		TotalPaid:  decimal.Zero,
		Payments:   make([]models.Payment, 0),
	}
	for _, p := range global {
		if p.StakeholderID == stakeholderID && p.IsGlobal() {
			balance.TotalPaid = balance.TotalPaid.Add(p.Amount)
			balance.Payments = append(balance.Payments, p)
		}
	}
	balance.Remaining = totalShare.Sub(balance.TotalPaid)
	return balance
}
