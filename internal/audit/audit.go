// Package audit records ledger mutations as events. Events are handed to a
// buffered Worker and written to the event store off the request path.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/profitshare/internal/models"
)

// Event types emitted by the ledger.
const (
	TransactionCreated = "transaction.created"
	TransactionUpdated = "transaction.updated"
	TransactionDeleted = "transaction.deleted"
	StakeholderCreated = "stakeholder.created"
	StakeholderUpdated = "stakeholder.updated"
	StakeholderDeleted = "stakeholder.deleted"
	PaymentRecorded    = "payment.recorded"
	PaymentUpdated     = "payment.updated"
	PaymentDeleted     = "payment.deleted"
)

type EventOption func(*models.AuditEvent)

func WithType(eventType string) EventOption {
	return func(e *models.AuditEvent) {
		e.Type = eventType
	}
}

// WithField adds one key/value pair to the event data.
func WithField(key, value string) EventOption {
	return func(e *models.AuditEvent) {
		e.Data[key] = value
	}
}

func NewEvent(opts ...EventOption) models.AuditEvent {
	e := models.AuditEvent{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Data:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Logger accepts events for asynchronous persistence.
type Logger interface {
	Log(e models.AuditEvent)
}

type discard struct{}

func (discard) Log(models.AuditEvent) {}

// Discard is a Logger that drops every event.
var Discard Logger = discard{}
