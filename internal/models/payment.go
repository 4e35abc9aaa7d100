package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a disbursement recorded against a stakeholder.
type Payment struct {
	// ID is assigned by the store on creation.
	ID int64

	// StakeholderID references the stakeholder who received the money.
	StakeholderID int64 `validate:"gt=0"`

	// Amount is the positive value paid out.
	Amount decimal.Decimal `validate:"gt=0"`

	// Date is when the payment was made.
	Date time.Time `validate:"required"`

	// Notes is optional free text.
	Notes string `validate:"max=1000"`

	// Month is the period key ("2024-3") the payment settles, or empty for
	// payments not attributed to any period.
	Month string `validate:"omitempty,periodkey"`

	// IsGlobalPayment marks a payment as settling the cumulative balance
	// even when Month is set.
	IsGlobalPayment bool

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// CreatedBy is the operator who recorded the payment, if known.
	CreatedBy string
}

// IsGlobal reports whether the payment settles against the stakeholder's
// cumulative balance rather than a single period.
func (p Payment) IsGlobal() bool {
	return p.IsGlobalPayment || p.Month == ""
}

// PaymentUpdate carries the fields to change on an existing payment.
type PaymentUpdate struct {
	StakeholderID   *int64
	Amount          *decimal.Decimal
	Date            *time.Time
	Notes           *string
	Month           *string
	IsGlobalPayment *bool
}

// Apply copies the set fields of u onto p.
func (u PaymentUpdate) Apply(p *Payment) {
	if u.StakeholderID != nil {
		p.StakeholderID = *u.StakeholderID
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.Date != nil {
		p.Date = *u.Date
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
	if u.Month != nil {
		p.Month = *u.Month
	}
	if u.IsGlobalPayment != nil {
		p.IsGlobalPayment = *u.IsGlobalPayment
	}
}
