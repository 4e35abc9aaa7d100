package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income from expenses.
type TransactionType string

const (
	TransactionProfit TransactionType = "profit"
	TransactionCost   TransactionType = "cost"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionProfit || t == TransactionCost
}

// Transaction is a company-level financial event.
type Transaction struct {
	// ID is assigned by the store on creation and never reused.
	ID int64

	// Type is either profit or cost.
	Type TransactionType `validate:"oneof=profit cost"`

	// Amount is the positive value of the event. The sign comes from Type.
	Amount decimal.Decimal `validate:"gt=0"`

	// Date is when the event happened. Its calendar month decides which
	// period the transaction is aggregated into.
	Date time.Time `validate:"required"`

	// Description is free text, required on creation.
	Description string `validate:"required,max=500"`

	// CreatedAt is the Unix timestamp when the record was stored.
	CreatedAt int64
}

// TransactionUpdate carries the fields to change on an existing transaction.
// Nil fields are left untouched.
type TransactionUpdate struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
}

// Apply copies the set fields of u onto t.
func (u TransactionUpdate) Apply(t *Transaction) {
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
}
