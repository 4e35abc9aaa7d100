package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   int64           `json:"createdAt"`
}

type ListTransactionsRequest struct{}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type GetTransactionRequest struct {
	ID int64 `json:"id"`
}

type GetTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type CreateTransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// UpdateTransactionRequest changes only the fields that are present.
type UpdateTransactionRequest struct {
	ID          int64            `json:"id"`
	Type        *string          `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type UpdateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	ID int64 `json:"id"`
}

type DeleteTransactionResponse struct {
	Success bool `json:"success"`
}
