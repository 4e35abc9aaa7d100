package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/profitshare/internal/audit"
	"github.com/mmynk/profitshare/internal/models"
)

// DefaultStakeholderNames are created by EnsureDefaultStakeholders.
var DefaultStakeholderNames = []string{"Stakeholder 1", "Stakeholder 2"}

// StakeholderDetail is a stakeholder with their payment history.
type StakeholderDetail struct {
	models.Stakeholder
	Payments []models.Payment
}

// ListStakeholders returns all stakeholders, active or not.
func (l *Ledger) ListStakeholders(ctx context.Context) ([]models.Stakeholder, error) {
	stakeholders, err := l.store.ListStakeholders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stakeholders: %w", err)
	}
	return stakeholders, nil
}

// GetStakeholder returns a stakeholder together with their payments,
// newest first.
func (l *Ledger) GetStakeholder(ctx context.Context, id int64) (*StakeholderDetail, error) {
	s, err := l.store.GetStakeholder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stakeholder: %w", err)
	}

	payments, err := l.store.ListPaymentsByStakeholder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list stakeholder payments: %w", err)
	}

	return &StakeholderDetail{Stakeholder: *s, Payments: payments}, nil
}

// CreateStakeholder validates and stores s. Names must be unique.
func (l *Ledger) CreateStakeholder(ctx context.Context, s *models.Stakeholder) error {
	s.Name = strings.TrimSpace(s.Name)
	if err := l.check(s); err != nil {
		return err
	}

	if err := l.store.CreateStakeholder(ctx, s); err != nil {
		return fmt.Errorf("failed to create stakeholder: %w", err)
	}

	l.emit(audit.StakeholderCreated, s.ID, "name", s.Name)
	return nil
}

// UpdateStakeholder renames or (de)activates a stakeholder. Deactivation is
// how stakeholders with payments are retired.
func (l *Ledger) UpdateStakeholder(ctx context.Context, id int64, upd models.StakeholderUpdate) (*models.Stakeholder, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		upd.Name = &name
	}

	cur, err := l.store.GetStakeholder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stakeholder: %w", err)
	}
	merged := *cur
	upd.Apply(&merged)
	if err := l.check(&merged); err != nil {
		return nil, err
	}

	updated, err := l.store.UpdateStakeholder(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to update stakeholder: %w", err)
	}

	l.emit(audit.StakeholderUpdated, id,
		"name", updated.Name,
		"active", fmt.Sprint(updated.Active),
	)
	return updated, nil
}

// DeleteStakeholder removes a stakeholder without payments.
func (l *Ledger) DeleteStakeholder(ctx context.Context, id int64) error {
	if err := l.store.DeleteStakeholder(ctx, id); err != nil {
		return fmt.Errorf("failed to delete stakeholder: %w", err)
	}
	l.emit(audit.StakeholderDeleted, id)
	return nil
}

// EnsureDefaultStakeholders creates the default pair of active stakeholders
// when none exist yet. It returns how many were created.
func (l *Ledger) EnsureDefaultStakeholders(ctx context.Context) (int, error) {
	existing, err := l.ListStakeholders(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, name := range DefaultStakeholderNames {
		if err := l.CreateStakeholder(ctx, &models.Stakeholder{Name: name, Active: true}); err != nil {
			return i, err
		}
	}
	return len(DefaultStakeholderNames), nil
}
