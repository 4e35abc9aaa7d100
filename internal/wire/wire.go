// Package wire converts between ledger records and api messages. Both the
// Connect services and the REST handlers speak the api types.
package wire

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/calculator"
	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/pkg/api"
)

// DateParser turns request date strings into instants. *ledger.Ledger
// implements it.
type DateParser interface {
	ParseDate(s string) (time.Time, error)
}

func Transaction(tx models.Transaction) api.Transaction {
	return api.Transaction{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}

func Transactions(txs []models.Transaction) []api.Transaction {
	out := make([]api.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = Transaction(tx)
	}
	return out
}

func Stakeholder(s models.Stakeholder) api.Stakeholder {
	return api.Stakeholder{ID: s.ID, Name: s.Name, Active: s.Active}
}

func Stakeholders(stakeholders []models.Stakeholder) []api.Stakeholder {
	out := make([]api.Stakeholder, len(stakeholders))
	for i, s := range stakeholders {
		out[i] = Stakeholder(s)
	}
	return out
}

func Payment(p models.Payment) api.Payment {
	return api.Payment{
		ID:              p.ID,
		StakeholderID:   p.StakeholderID,
		Amount:          p.Amount,
		Date:            p.Date,
		Notes:           p.Notes,
		Month:           p.Month,
		IsGlobalPayment: p.IsGlobalPayment,
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
	}
}

func Payments(payments []models.Payment) []api.Payment {
	out := make([]api.Payment, len(payments))
	for i, p := range payments {
		out[i] = Payment(p)
	}
	return out
}

// PaymentDetail includes the payment's stakeholder.
func PaymentDetail(d ledger.PaymentDetail) api.Payment {
	p := Payment(d.Payment)
	s := Stakeholder(d.Stakeholder)
	p.Stakeholder = &s
	return p
}

func PaymentDetails(details []ledger.PaymentDetail) []api.Payment {
	out := make([]api.Payment, len(details))
	for i, d := range details {
		out[i] = PaymentDetail(d)
	}
	return out
}

func Summary(s *calculator.FinancialSummary) api.FinancialSummary {
	out := api.FinancialSummary{
		TotalProfit:         s.TotalProfit,
		TotalCost:           s.TotalCost,
		TotalBalance:        s.TotalBalance,
		Stakeholders:        Stakeholders(s.Stakeholders),
		StakeholderTotals:   s.StakeholderTotals,
		StakeholderBalances: make(map[int64]api.StakeholderBalance, len(s.StakeholderBalances)),
		MonthlyCalculations: make([]api.MonthlyCalculation, len(s.MonthlyCalculations)),
	}

	for id, b := range s.StakeholderBalances {
		out.StakeholderBalances[id] = api.StakeholderBalance{
			TotalShare: b.TotalShare,
			TotalPaid:  b.TotalPaid,
			Remaining:  b.Remaining,
			Payments:   Payments(b.Payments),
		}
	}

	for i, m := range s.MonthlyCalculations {
		statuses := make(map[int64]api.PaymentStatus, len(m.StakeholderPayments))
		for id, st := range m.StakeholderPayments {
			statuses[id] = api.PaymentStatus{
				TotalPaid: st.TotalPaid,
				Remaining: st.Remaining,
				Payments:  Payments(st.Payments),
			}
		}
		out.MonthlyCalculations[i] = api.MonthlyCalculation{
			Month:               m.Month,
			Profit:              m.Profit,
			Cost:                m.Cost,
			Balance:             m.Balance,
			StakeholderShares:   m.StakeholderShares,
			StakeholderPayments: statuses,
		}
	}

	return out
}

func User(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   time.Unix(u.CreatedAt, 0),
	}
}

// NewTransaction builds a transaction from a create request.
func NewTransaction(dp DateParser, req *api.CreateTransactionRequest) (*models.Transaction, error) {
	date, err := dp.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &models.Transaction{
		Type:        models.TransactionType(req.Type),
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}, nil
}

func TransactionUpdate(dp DateParser, req *api.UpdateTransactionRequest) (models.TransactionUpdate, error) {
	upd := models.TransactionUpdate{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Type != nil {
		typ := models.TransactionType(*req.Type)
		upd.Type = &typ
	}
	if req.Date != nil {
		date, err := dp.ParseDate(*req.Date)
		if err != nil {
			return models.TransactionUpdate{}, err
		}
		upd.Date = &date
	}
	return upd, nil
}

func NewStakeholder(req *api.CreateStakeholderRequest) *models.Stakeholder {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &models.Stakeholder{Name: req.Name, Active: active}
}

func StakeholderUpdate(req *api.UpdateStakeholderRequest) models.StakeholderUpdate {
	return models.StakeholderUpdate{Name: req.Name, Active: req.Active}
}

// NewPayment builds a payment from a record request. createdBy is the
// operator's user ID, empty when the request was not authenticated.
func NewPayment(dp DateParser, req *api.RecordPaymentRequest, createdBy string) (*models.Payment, error) {
	date, err := dp.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &models.Payment{
		StakeholderID:   req.StakeholderID,
		Amount:          req.Amount,
		Date:            date,
		Notes:           req.Notes,
		Month:           req.Month,
		IsGlobalPayment: req.IsGlobalPayment,
		CreatedBy:       createdBy,
	}, nil
}

func PaymentUpdate(dp DateParser, req *api.UpdatePaymentRequest) (models.PaymentUpdate, error) {
	upd := models.PaymentUpdate{
		StakeholderID:   req.StakeholderID,
		Amount:          req.Amount,
		Notes:           req.Notes,
		Month:           req.Month,
		IsGlobalPayment: req.IsGlobalPayment,
	}
	if req.Date != nil {
		date, err := dp.ParseDate(*req.Date)
		if err != nil {
			return models.PaymentUpdate{}, err
		}
		upd.Date = &date
	}
	return upd, nil
}

// ParseAmount parses a decimal amount from user input such as a CLI flag.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q is not a number", ledger.ErrInvalidInput, s)
	}
	return d, nil
}
