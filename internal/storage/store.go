// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/profitshare/internal/models"
)

// TransactionStore persists profit and cost transactions.
type TransactionStore interface {
	// ListTransactions returns every transaction, newest date first.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// GetTransaction returns ErrNotFound if no transaction has the given ID.
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)

	// CreateTransaction persists tx and populates tx.ID and tx.CreatedAt.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// UpdateTransaction applies the non-nil fields of upd and returns the
	// updated record.
	UpdateTransaction(ctx context.Context, id int64, upd models.TransactionUpdate) (*models.Transaction, error)

	DeleteTransaction(ctx context.Context, id int64) error
}

// StakeholderStore persists stakeholders.
type StakeholderStore interface {
	// ListStakeholders returns every stakeholder, active or not, in creation order.
	ListStakeholders(ctx context.Context) ([]models.Stakeholder, error)

	GetStakeholder(ctx context.Context, id int64) (*models.Stakeholder, error)

	// CreateStakeholder returns ErrConflict if the name is taken.
	CreateStakeholder(ctx context.Context, s *models.Stakeholder) error

	// UpdateStakeholder returns ErrConflict if a rename collides with a
	// different stakeholder.
	UpdateStakeholder(ctx context.Context, id int64, upd models.StakeholderUpdate) (*models.Stakeholder, error)

	// DeleteStakeholder returns ErrHasPayments if any payment references the
	// stakeholder. Such stakeholders have to be deactivated instead.
	DeleteStakeholder(ctx context.Context, id int64) error
}

// PaymentStore persists payments.
type PaymentStore interface {
	// ListPayments returns every payment, newest date first.
	ListPayments(ctx context.Context) ([]models.Payment, error)

	// ListPaymentsByStakeholder returns one stakeholder's payments, newest first.
	ListPaymentsByStakeholder(ctx context.Context, stakeholderID int64) ([]models.Payment, error)

	GetPayment(ctx context.Context, id int64) (*models.Payment, error)

	// CreatePayment returns ErrNotFound if p.StakeholderID does not reference
	// an existing stakeholder.
	CreatePayment(ctx context.Context, p *models.Payment) error

	UpdatePayment(ctx context.Context, id int64, upd models.PaymentUpdate) (*models.Payment, error)

	DeletePayment(ctx context.Context, id int64) error
}

// UserStore persists operator accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail and GetUserByID return ErrNotFound for unknown users.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// EventStore persists audit events.
type EventStore interface {
	SaveEvent(ctx context.Context, e models.AuditEvent) error
	ListEventsByType(ctx context.Context, eventType string) ([]models.AuditEvent, error)
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the ledger or service layers.
type Store interface {
	TransactionStore
	StakeholderStore
	PaymentStore
	UserStore
	EventStore

	// Close releases any resources held by the store.
	Close() error
}
