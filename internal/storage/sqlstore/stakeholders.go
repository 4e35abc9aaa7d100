package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/storage"
)

const stakeholderColumns = "id, name, active"

// ListStakeholders retrieves all stakeholders in creation order.
func (s *Store) ListStakeholders(ctx context.Context) ([]models.Stakeholder, error) {
	rows, err := s.db.QueryContext(ctx, s.q(
		`SELECT `+stakeholderColumns+` FROM stakeholders ORDER BY id`,
	))
	if err != nil {
		return nil, s.fail(err, "failed to list stakeholders")
	}
	defer rows.Close()

	stakeholders := make([]models.Stakeholder, 0)
	for rows.Next() {
		var sh models.Stakeholder
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.Active); err != nil {
			return nil, s.fail(err, "failed to scan stakeholder")
		}
		stakeholders = append(stakeholders, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail(err, "failed to iterate stakeholders")
	}

	return stakeholders, nil
}

// GetStakeholder retrieves a stakeholder by ID.
func (s *Store) GetStakeholder(ctx context.Context, id int64) (*models.Stakeholder, error) {
	return s.getStakeholder(ctx, s.db, id)
}

func (s *Store) getStakeholder(ctx context.Context, q querier, id int64) (*models.Stakeholder, error) {
	var sh models.Stakeholder
	err := q.QueryRowContext(ctx, s.q(
		`SELECT `+stakeholderColumns+` FROM stakeholders WHERE id = ?`,
	), id).Scan(&sh.ID, &sh.Name, &sh.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: stakeholder %d", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, s.fail(err, "failed to get stakeholder")
	}
	return &sh, nil
}

// nameTaken reports whether a stakeholder other than exceptID uses name.
func (s *Store) nameTaken(ctx context.Context, q querier, name string, exceptID int64) (bool, error) {
	var id int64
	err := q.QueryRowContext(ctx, s.q(`SELECT id FROM stakeholders WHERE name = ?`), name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, s.fail(err, "failed to check stakeholder name")
	}
	return id != exceptID, nil
}

// CreateStakeholder persists a new stakeholder. Names are unique.
func (s *Store) CreateStakeholder(ctx context.Context, sh *models.Stakeholder) error {
	return s.inTx(ctx, func(q *sql.Tx) error {
		taken, err := s.nameTaken(ctx, q, sh.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: stakeholder named %q", storage.ErrConflict, sh.Name)
		}

		err = q.QueryRowContext(ctx, s.q(
			`INSERT INTO stakeholders (name, active) VALUES (?, ?) RETURNING id`),
			sh.Name, sh.Active,
		).Scan(&sh.ID)
		if err != nil {
			return s.fail(err, "failed to insert stakeholder")
		}
		return nil
	})
}

// UpdateStakeholder renames and/or (de)activates a stakeholder.
func (s *Store) UpdateStakeholder(ctx context.Context, id int64, upd models.StakeholderUpdate) (*models.Stakeholder, error) {
	var updated *models.Stakeholder
	err := s.inTx(ctx, func(q *sql.Tx) error {
		cur, err := s.getStakeholder(ctx, q, id)
		if err != nil {
			return err
		}

		if upd.Name != nil && *upd.Name != cur.Name {
			taken, err := s.nameTaken(ctx, q, *upd.Name, id)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: stakeholder named %q", storage.ErrConflict, *upd.Name)
			}
		}
		upd.Apply(cur)

		_, err = q.ExecContext(ctx, s.q(
			`UPDATE stakeholders SET name = ?, active = ? WHERE id = ?`),
			cur.Name, cur.Active, id,
		)
		if err != nil {
			return s.fail(err, "failed to update stakeholder")
		}
		updated = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteStakeholder removes a stakeholder that has no payments.
func (s *Store) DeleteStakeholder(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(q *sql.Tx) error {
		if _, err := s.getStakeholder(ctx, q, id); err != nil {
			return err
		}

		var count int
		err := q.QueryRowContext(ctx, s.q(
			`SELECT COUNT(*) FROM payments WHERE stakeholder_id = ?`,
		), id).Scan(&count)
		if err != nil {
			return s.fail(err, "failed to count stakeholder payments")
		}
		if count > 0 {
			return fmt.Errorf("%w: stakeholder %d has %d payments", storage.ErrHasPayments, id, count)
		}

		if _, err := q.ExecContext(ctx, s.q(`DELETE FROM stakeholders WHERE id = ?`), id); err != nil {
			return s.fail(err, "failed to delete stakeholder")
		}
		return nil
	})
}
