package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/storage"
)

const paymentColumns = "id, stakeholder_id, amount, date, notes, month, is_global_payment, created_at, created_by"

func scanPayment(row scanner) (models.Payment, error) {
	var (
		p         models.Payment
		date      int64
		month     sql.NullString
		createdBy sql.NullString
	)
	err := row.Scan(&p.ID, &p.StakeholderID, &p.Amount, &date, &p.Notes,
		&month, &p.IsGlobalPayment, &p.CreatedAt, &createdBy)
	if err != nil {
		return models.Payment{}, err
	}
	p.Date = time.UnixMilli(date)
	p.Month = month.String
	p.CreatedBy = createdBy.String
	return p, nil
}

func (s *Store) queryPayments(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, s.fail(err, "failed to list payments")
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, s.fail(err, "failed to scan payment")
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail(err, "failed to iterate payments")
	}

	return payments, nil
}

// ListPayments retrieves all payments, newest first.
func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY date DESC, id DESC`)
}

// ListPaymentsByStakeholder retrieves one stakeholder's payments, newest first.
func (s *Store) ListPaymentsByStakeholder(ctx context.Context, stakeholderID int64) ([]models.Payment, error) {
	return s.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE stakeholder_id = ? ORDER BY date DESC, id DESC`,
		stakeholderID)
}

// GetPayment retrieves a payment by ID.
func (s *Store) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	return s.getPayment(ctx, s.db, id)
}

func (s *Store) getPayment(ctx context.Context, q querier, id int64) (*models.Payment, error) {
	p, err := scanPayment(q.QueryRowContext(ctx, s.q(
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`,
	), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %d", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, s.fail(err, "failed to get payment")
	}
	return &p, nil
}

// CreatePayment persists a new payment for an existing stakeholder.
func (s *Store) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}

	return s.inTx(ctx, func(q *sql.Tx) error {
		if _, err := s.getStakeholder(ctx, q, p.StakeholderID); err != nil {
			return err
		}

		err := q.QueryRowContext(ctx, s.q(
			`INSERT INTO payments (stakeholder_id, amount, date, notes, month, is_global_payment, created_at, created_by)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
			p.StakeholderID, p.Amount, p.Date.UnixMilli(), p.Notes,
			nullString(p.Month), p.IsGlobalPayment, p.CreatedAt, nullString(p.CreatedBy),
		).Scan(&p.ID)
		if err != nil {
			return s.fail(err, "failed to insert payment")
		}
		return nil
	})
}

// UpdatePayment applies the set fields of upd to an existing payment.
func (s *Store) UpdatePayment(ctx context.Context, id int64, upd models.PaymentUpdate) (*models.Payment, error) {
	var updated *models.Payment
	err := s.inTx(ctx, func(q *sql.Tx) error {
		cur, err := s.getPayment(ctx, q, id)
		if err != nil {
			return err
		}

		if upd.StakeholderID != nil && *upd.StakeholderID != cur.StakeholderID {
			if _, err := s.getStakeholder(ctx, q, *upd.StakeholderID); err != nil {
				return err
			}
		}
		upd.Apply(cur)

		_, err = q.ExecContext(ctx, s.q(
			`UPDATE payments SET stakeholder_id = ?, amount = ?, date = ?, notes = ?, month = ?, is_global_payment = ?
			 WHERE id = ?`),
			cur.StakeholderID, cur.Amount, cur.Date.UnixMilli(), cur.Notes,
			nullString(cur.Month), cur.IsGlobalPayment, id,
		)
		if err != nil {
			return s.fail(err, "failed to update payment")
		}
		updated = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePayment removes a payment by ID.
func (s *Store) DeletePayment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM payments WHERE id = ?`), id)
	if err != nil {
		return s.fail(err, "failed to delete payment")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return s.fail(err, "failed to delete payment")
	}
	if n == 0 {
		return fmt.Errorf("%w: payment %d", storage.ErrNotFound, id)
	}
	return nil
}
