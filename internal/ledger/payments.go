package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/profitshare/internal/audit"
	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/period"
)

// PaymentDetail is a payment with the stakeholder it was made to.
type PaymentDetail struct {
	models.Payment
	Stakeholder models.Stakeholder
}

// ListPayments returns every payment, newest first, with its stakeholder.
func (l *Ledger) ListPayments(ctx context.Context) ([]PaymentDetail, error) {
	payments, err := l.store.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	stakeholders, err := l.store.ListStakeholders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stakeholders: %w", err)
	}

	idx := stakeholderIndex(stakeholders)
	details := make([]PaymentDetail, 0, len(payments))
	for _, p := range payments {
		details = append(details, PaymentDetail{Payment: p, Stakeholder: idx[p.StakeholderID]})
	}
	return details, nil
}

func (l *Ledger) GetPayment(ctx context.Context, id int64) (*PaymentDetail, error) {
	p, err := l.store.GetPayment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	s, err := l.store.GetStakeholder(ctx, p.StakeholderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment stakeholder: %w", err)
	}
	return &PaymentDetail{Payment: *p, Stakeholder: *s}, nil
}

// RecordPayment validates and appends a payment. The month, when given, is
// stored in canonical "YYYY-M" form so that it matches the period keys of
// the summary. Recording never recomputes anything; callers fetch a fresh
// Summary afterwards.
func (l *Ledger) RecordPayment(ctx context.Context, p *models.Payment) error {
	p.Month = strings.TrimSpace(p.Month)
	p.Notes = strings.TrimSpace(p.Notes)
	if err := l.check(p); err != nil {
		return err
	}
	if p.Month != "" {
		p.Month, _ = period.Normalize(p.Month)
	}

	if err := l.store.CreatePayment(ctx, p); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	l.emit(audit.PaymentRecorded, p.ID,
		"stakeholder_id", fmt.Sprint(p.StakeholderID),
		"amount", p.Amount.String(),
		"month", p.Month,
		"global", fmt.Sprint(p.IsGlobal()),
		"created_by", p.CreatedBy,
	)
	return nil
}

// UpdatePayment validates the payment as it would look after upd and stores
// the change. Moving a payment to another stakeholder requires that
// stakeholder to exist.
func (l *Ledger) UpdatePayment(ctx context.Context, id int64, upd models.PaymentUpdate) (*models.Payment, error) {
	if upd.Month != nil {
		month := strings.TrimSpace(*upd.Month)
		upd.Month = &month
	}

	cur, err := l.store.GetPayment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	merged := *cur
	upd.Apply(&merged)
	if err := l.check(&merged); err != nil {
		return nil, err
	}
	if upd.Month != nil && *upd.Month != "" {
		month, _ := period.Normalize(*upd.Month)
		upd.Month = &month
	}

	updated, err := l.store.UpdatePayment(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	l.emit(audit.PaymentUpdated, id,
		"amount", updated.Amount.String(),
		"month", updated.Month,
		"global", fmt.Sprint(updated.IsGlobal()),
	)
	return updated, nil
}

func (l *Ledger) DeletePayment(ctx context.Context, id int64) error {
	if err := l.store.DeletePayment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	l.emit(audit.PaymentDeleted, id)
	return nil
}
