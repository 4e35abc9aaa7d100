package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/profitshare/internal/models"
)

func TestPartitionPayments(t *testing.T) {
	payments := []models.Payment{
		{ID: 1, StakeholderID: 1, Amount: dec("100"), Month: "2024-3"},
		{ID: 2, StakeholderID: 1, Amount: dec("50")},
		{ID: 3, StakeholderID: 2, Amount: dec("75"), Month: "2024-3", IsGlobalPayment: true},
		{ID: 4, StakeholderID: 2, Amount: dec("25"), Month: "2024-4"},
	}

	global, scoped := PartitionPayments(payments)

	if len(global) != 2 || global[0].ID != 2 || global[1].ID != 3 {
		t.Errorf("global = %+v, want payments 2 and 3", global)
	}
	if len(scoped) != 2 || scoped[0].ID != 1 || scoped[1].ID != 4 {
		t.Errorf("scoped = %+v, want payments 1 and 4", scoped)
	}
}

func TestReconcilePeriod(t *testing.T) {
	scoped := []models.Payment{
		{ID: 1, StakeholderID: 1, Amount: dec("900"), Month: "2024-3"},
		{ID: 2, StakeholderID: 1, Amount: dec("100"), Month: "2024-4"},
		{ID: 3, StakeholderID: 2, Amount: dec("500"), Month: "2024-3"},
		{ID: 4, StakeholderID: 1, Amount: dec("50"), Month: "2024-3"},
	}

	status := ReconcilePeriod(dec("1900"), 1, "2024-3", scoped)

	assertDecimal(t, "total paid", status.TotalPaid, "950")
	assertDecimal(t, "remaining", status.Remaining, "950")
	if len(status.Payments) != 2 || status.Payments[0].ID != 1 || status.Payments[1].ID != 4 {
		t.Errorf("payments = %+v, want 1 and 4 in insertion order", status.Payments)
	}
}

func TestReconcilePeriod_Overpayment(t *testing.T) {
	scoped := []models.Payment{{ID: 1, StakeholderID: 1, Amount: dec("2000"), Month: "2024-3"}}

	status := ReconcilePeriod(dec("1900"), 1, "2024-3", scoped)
	assertDecimal(t, "remaining", status.Remaining, "-100")
}

func TestReconcilePeriod_IgnoresGlobalPayments(t *testing.T) {
	payments := []models.Payment{
		{ID: 1, StakeholderID: 1, Amount: dec("300"), Month: "2024-3", IsGlobalPayment: true},
	}

	status := ReconcilePeriod(dec("1900"), 1, "2024-3", payments)
	assertDecimal(t, "total paid", status.TotalPaid, "0")
	if status.Payments == nil {
		t.Error("expected an empty, non-nil payments slice")
	}
}

func TestReconcileGlobal(t *testing.T) {
	payments := []models.Payment{
		{ID: 1, StakeholderID: 1, Amount: dec("500")},
		{ID: 2, StakeholderID: 1, Amount: dec("900"), Month: "2024-3"},
		{ID: 3, StakeholderID: 1, Amount: dec("200"), Month: "2024-3", IsGlobalPayment: true},
		{ID: 4, StakeholderID: 2, Amount: dec("1000")},
	}

	balance := ReconcileGlobal(dec("1900"), 1, payments)

	assertDecimal(t, "total share", balance.TotalShare, "1900")
	assertDecimal(t, "total paid", balance.TotalPaid, "700")
	assertDecimal(t, "remaining", balance.Remaining, "1200")
	if len(balance.Payments) != 2 {
		t.Errorf("expected 2 global payments, got %d", len(balance.Payments))
	}
}

func TestPaymentIsGlobal(t *testing.T) {
	tests := []struct {
		name string
		p    models.Payment
		want bool
	}{
		{"month set", models.Payment{Month: "2024-3"}, false},
		{"no month", models.Payment{}, true},
		{"flagged with month", models.Payment{Month: "2024-3", IsGlobalPayment: true}, true},
		{"flagged without month", models.Payment{IsGlobalPayment: true, Date: time.Now()}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsGlobal(); got != tt.want {
				t.Errorf("IsGlobal() = %v, want %v", got, tt.want)
			}
		})
	}
}
