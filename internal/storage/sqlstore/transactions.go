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

const transactionColumns = "id, type, amount, date, description, created_at"

func scanTransaction(row scanner) (models.Transaction, error) {
	var (
		tx   models.Transaction
		typ  string
		date int64
	)
	if err := row.Scan(&tx.ID, &typ, &tx.Amount, &date, &tx.Description, &tx.CreatedAt); err != nil {
		return models.Transaction{}, err
	}
	tx.Type = models.TransactionType(typ)
	tx.Date = time.UnixMilli(date)
	return tx, nil
}

// ListTransactions retrieves all transactions, newest first.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, s.q(
		`SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC, id DESC`,
	))
	if err != nil {
		return nil, s.fail(err, "failed to list transactions")
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, s.fail(err, "failed to scan transaction")
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail(err, "failed to iterate transactions")
	}

	return txs, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *Store) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.getTransaction(ctx, s.db, id)
}

func (s *Store) getTransaction(ctx context.Context, q querier, id int64) (*models.Transaction, error) {
	tx, err := scanTransaction(q.QueryRowContext(ctx, s.q(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`,
	), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %d", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, s.fail(err, "failed to get transaction")
	}
	return &tx, nil
}

// CreateTransaction persists a new transaction.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.CreatedAt == 0 {
		tx.CreatedAt = time.Now().Unix()
	}

	err := s.db.QueryRowContext(ctx, s.q(
		`INSERT INTO transactions (type, amount, date, description, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`),
		string(tx.Type), tx.Amount, tx.Date.UnixMilli(), tx.Description, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return s.fail(err, "failed to insert transaction")
	}

	return nil
}

// UpdateTransaction applies the set fields of upd to an existing transaction.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, upd models.TransactionUpdate) (*models.Transaction, error) {
	var updated *models.Transaction
	err := s.inTx(ctx, func(q *sql.Tx) error {
		cur, err := s.getTransaction(ctx, q, id)
		if err != nil {
			return err
		}

		upd.Apply(cur)

		_, err = q.ExecContext(ctx, s.q(
			`UPDATE transactions SET type = ?, amount = ?, date = ?, description = ? WHERE id = ?`),
			string(cur.Type), cur.Amount, cur.Date.UnixMilli(), cur.Description, id,
		)
		if err != nil {
			return s.fail(err, "failed to update transaction")
		}
		updated = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM transactions WHERE id = ?`), id)
	if err != nil {
		return s.fail(err, "failed to delete transaction")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return s.fail(err, "failed to delete transaction")
	}
	if n == 0 {
		return fmt.Errorf("%w: transaction %d", storage.ErrNotFound, id)
	}
	return nil
}
