package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/models"
)

// ErrNoActiveStakeholders is returned when a balance has to be split but no
// stakeholder is active.
var ErrNoActiveStakeholders = errors.New("no active stakeholders to split the balance between")

// SplitShare computes one stakeholder's share of a period balance under the
// equal-split policy: balance / activeCount when the balance is positive,
// zero otherwise. Losses are never distributed.
func SplitShare(balance decimal.Decimal, activeCount int) (decimal.Decimal, error) {
	if activeCount <= 0 {
		return decimal.Zero, ErrNoActiveStakeholders
	}
	if !balance.IsPositive() {
		return decimal.Zero, nil
	}
	return balance.Div(decimal.NewFromInt(int64(activeCount))), nil
}

// AllocatePeriod returns every active stakeholder's share of balance, keyed
// by stakeholder ID.
func AllocatePeriod(balance decimal.Decimal, active []models.Stakeholder) (map[int64]decimal.Decimal, error) {
	share, err := SplitShare(balance, len(active))
	if err != nil {
		return nil, err
	}
	shares := make(map[int64]decimal.Decimal, len(active))
	for _, s := range active {
		shares[s.ID] = share
	}
	return shares, nil
}

// ActiveStakeholders filters stakeholders down to the active ones, keeping
// their order.
func ActiveStakeholders(stakeholders []models.Stakeholder) []models.Stakeholder {
	active := make([]models.Stakeholder, 0, len(stakeholders))
	for _, s := range stakeholders {
		if s.Active {
			active = append(active, s)
		}
	}
	return active
}
