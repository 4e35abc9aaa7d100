package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/profitshare/internal/audit"
	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/period"
)

// ListTransactions returns every transaction, newest first.
func (l *Ledger) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, err := l.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (l *Ledger) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	tx, err := l.store.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// CreateTransaction validates and stores tx, filling in its ID.
func (l *Ledger) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	tx.Description = strings.TrimSpace(tx.Description)
	if err := l.check(tx); err != nil {
		return err
	}

	if err := l.store.CreateTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	l.emit(audit.TransactionCreated, tx.ID,
		"type", string(tx.Type),
		"amount", tx.Amount.String(),
		"month", period.KeyOf(tx.Date.In(l.loc)),
	)
	return nil
}

// UpdateTransaction validates the record as it would look after upd and
// stores the change.
func (l *Ledger) UpdateTransaction(ctx context.Context, id int64, upd models.TransactionUpdate) (*models.Transaction, error) {
	if upd.Description != nil {
		desc := strings.TrimSpace(*upd.Description)
		upd.Description = &desc
	}

	cur, err := l.store.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	merged := *cur
	upd.Apply(&merged)
	if err := l.check(&merged); err != nil {
		return nil, err
	}

	updated, err := l.store.UpdateTransaction(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	l.emit(audit.TransactionUpdated, id, "amount", updated.Amount.String())
	return updated, nil
}

func (l *Ledger) DeleteTransaction(ctx context.Context, id int64) error {
	if err := l.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	l.emit(audit.TransactionDeleted, id)
	return nil
}
