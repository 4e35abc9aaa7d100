package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmynk/profitshare/internal/models"
)

// RetryPolicy bounds how often a transient failure is retried.
type RetryPolicy struct {
	// Attempts is the total number of tries, including the first one.
	Attempts int

	// Delay is the fixed pause between tries.
	Delay time.Duration
}

// DefaultRetryPolicy retries once after 500ms.
var DefaultRetryPolicy = RetryPolicy{Attempts: 2, Delay: 500 * time.Millisecond}

// RetryObserver is notified before every retry.
type RetryObserver interface {
	ObserveRetry(op string)
}

// Retry runs fn until it succeeds, fails with a non-transient error, or the
// policy's attempts are used up. The context bounds the waits.
func Retry(ctx context.Context, policy RetryPolicy, op string, fn func() error) error {
	_, err := retryValue(ctx, policy, nil, op, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func retryValue[T any](ctx context.Context, policy RetryPolicy, obs RetryObserver, op string, fn func() (T, error)) (T, error) {
	attempts := max(policy.Attempts, 1)

	var (
		result T
		err    error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err = fn()
		if err == nil || !errors.Is(err, ErrTransient) || attempt == attempts {
			return result, err
		}

		slog.Warn("Store busy, retrying",
			"op", op,
			"attempt", attempt,
			"delay", policy.Delay,
			"error", err,
		)
		if obs != nil {
			obs.ObserveRetry(op)
		}

		timer := time.NewTimer(policy.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
	return result, err
}

// Retrying wraps a Store and retries every operation that fails with
// ErrTransient according to its policy.
type Retrying struct {
	next     Store
	policy   RetryPolicy
	observer RetryObserver
}

// Ensure Retrying implements Store
var _ Store = (*Retrying)(nil)

// NewRetrying wraps next. A nil observer is allowed.
func NewRetrying(next Store, policy RetryPolicy, observer RetryObserver) *Retrying {
	return &Retrying{next: next, policy: policy, observer: observer}
}

func (r *Retrying) do(ctx context.Context, op string, fn func() error) error {
	_, err := retryValue(ctx, r.policy, r.observer, op, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func (r *Retrying) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return retryValue(ctx, r.policy, r.observer, "ListTransactions", func() ([]models.Transaction, error) {
		return r.next.ListTransactions(ctx)
	})
}

func (r *Retrying) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return retryValue(ctx, r.policy, r.observer, "GetTransaction", func() (*models.Transaction, error) {
		return r.next.GetTransaction(ctx, id)
	})
}

func (r *Retrying) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return r.do(ctx, "CreateTransaction", func() error { return r.next.CreateTransaction(ctx, tx) })
}

func (r *Retrying) UpdateTransaction(ctx context.Context, id int64, upd models.TransactionUpdate) (*models.Transaction, error) {
	return retryValue(ctx, r.policy, r.observer, "UpdateTransaction", func() (*models.Transaction, error) {
		return r.next.UpdateTransaction(ctx, id, upd)
	})
}

func (r *Retrying) DeleteTransaction(ctx context.Context, id int64) error {
	return r.do(ctx, "DeleteTransaction", func() error { return r.next.DeleteTransaction(ctx, id) })
}

func (r *Retrying) ListStakeholders(ctx context.Context) ([]models.Stakeholder, error) {
	return retryValue(ctx, r.policy, r.observer, "ListStakeholders", func() ([]models.Stakeholder, error) {
		return r.next.ListStakeholders(ctx)
	})
}

func (r *Retrying) GetStakeholder(ctx context.Context, id int64) (*models.Stakeholder, error) {
	return retryValue(ctx, r.policy, r.observer, "GetStakeholder", func() (*models.Stakeholder, error) {
		return r.next.GetStakeholder(ctx, id)
	})
}

func (r *Retrying) CreateStakeholder(ctx context.Context, s *models.Stakeholder) error {
	return r.do(ctx, "CreateStakeholder", func() error { return r.next.CreateStakeholder(ctx, s) })
}

func (r *Retrying) UpdateStakeholder(ctx context.Context, id int64, upd models.StakeholderUpdate) (*models.Stakeholder, error) {
	return retryValue(ctx, r.policy, r.observer, "UpdateStakeholder", func() (*models.Stakeholder, error) {
		return r.next.UpdateStakeholder(ctx, id, upd)
	})
}

func (r *Retrying) DeleteStakeholder(ctx context.Context, id int64) error {
	return r.do(ctx, "DeleteStakeholder", func() error { return r.next.DeleteStakeholder(ctx, id) })
}

func (r *Retrying) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return retryValue(ctx, r.policy, r.observer, "ListPayments", func() ([]models.Payment, error) {
		return r.next.ListPayments(ctx)
	})
}

func (r *Retrying) ListPaymentsByStakeholder(ctx context.Context, stakeholderID int64) ([]models.Payment, error) {
	return retryValue(ctx, r.policy, r.observer, "ListPaymentsByStakeholder", func() ([]models.Payment, error) {
		return r.next.ListPaymentsByStakeholder(ctx, stakeholderID)
	})
}

func (r *Retrying) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	return retryValue(ctx, r.policy, r.observer, "GetPayment", func() (*models.Payment, error) {
		return r.next.GetPayment(ctx, id)
	})
}

func (r *Retrying) CreatePayment(ctx context.Context, p *models.Payment) error {
	return r.do(ctx, "CreatePayment", func() error { return r.next.CreatePayment(ctx, p) })
}

func (r *Retrying) UpdatePayment(ctx context.Context, id int64, upd models.PaymentUpdate) (*models.Payment, error) {
	return retryValue(ctx, r.policy, r.observer, "UpdatePayment", func() (*models.Payment, error) {
		return r.next.UpdatePayment(ctx, id, upd)
	})
}

func (r *Retrying) DeletePayment(ctx context.Context, id int64) error {
	return r.do(ctx, "DeletePayment", func() error { return r.next.DeletePayment(ctx, id) })
}

func (r *Retrying) CreateUser(ctx context.Context, user *models.User) error {
	return r.do(ctx, "CreateUser", func() error { return r.next.CreateUser(ctx, user) })
}

func (r *Retrying) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return retryValue(ctx, r.policy, r.observer, "GetUserByEmail", func() (*models.User, error) {
		return r.next.GetUserByEmail(ctx, email)
	})
}

func (r *Retrying) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return retryValue(ctx, r.policy, r.observer, "GetUserByID", func() (*models.User, error) {
		return r.next.GetUserByID(ctx, id)
	})
}

func (r *Retrying) SaveEvent(ctx context.Context, e models.AuditEvent) error {
	return r.do(ctx, "SaveEvent", func() error { return r.next.SaveEvent(ctx, e) })
}

func (r *Retrying) ListEventsByType(ctx context.Context, eventType string) ([]models.AuditEvent, error) {
	return retryValue(ctx, r.policy, r.observer, "ListEventsByType", func() ([]models.AuditEvent, error) {
		return r.next.ListEventsByType(ctx, eventType)
	})
}

// Close closes the wrapped store.
func (r *Retrying) Close() error {
	return r.next.Close()
}
