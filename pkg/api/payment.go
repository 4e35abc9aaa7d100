package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int64           `json:"id"`
	StakeholderID int64           `json:"stakeholderId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes"`

	// Month is the period key ("2024-3") or empty for global payments.
	Month           string `json:"month,omitempty"`
	IsGlobalPayment bool   `json:"isGlobalPayment"`
	CreatedAt       int64  `json:"createdAt"`
	CreatedBy       string `json:"createdBy,omitempty"`

	// Stakeholder is included in list and get responses.
	Stakeholder *Stakeholder `json:"stakeholder,omitempty"`
}

type ListPaymentsRequest struct{}

type ListPaymentsResponse struct {
	Payments []Payment `json:"payments"`
}

type GetPaymentRequest struct {
	ID int64 `json:"id"`
}

type GetPaymentResponse struct {
	Payment Payment `json:"payment"`
}

// RecordPaymentRequest records a payment. A payment without Month, or with
// IsGlobalPayment set, settles against the cumulative balance.
type RecordPaymentRequest struct {
	StakeholderID   int64           `json:"stakeholderId"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Notes           string          `json:"notes,omitempty"`
	Month           string          `json:"month,omitempty"`
	IsGlobalPayment bool            `json:"isGlobalPayment,omitempty"`
}

type RecordPaymentResponse struct {
	Payment Payment `json:"payment"`
}

type UpdatePaymentRequest struct {
	ID              int64            `json:"id"`
	StakeholderID   *int64           `json:"stakeholderId,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Date            *string          `json:"date,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Month           *string          `json:"month,omitempty"`
	IsGlobalPayment *bool            `json:"isGlobalPayment,omitempty"`
}

type UpdatePaymentResponse struct {
	Payment Payment `json:"payment"`
}

type DeletePaymentRequest struct {
	ID int64 `json:"id"`
}

type DeletePaymentResponse struct {
	Success bool `json:"success"`
}
