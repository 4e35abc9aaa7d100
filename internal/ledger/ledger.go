// Package ledger is the application core. It validates input, persists
// records through a storage.Store and builds financial summaries with the
// calculator package. Transport layers (Connect, REST, CLI) sit on top of it.
package ledger

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/profitshare/internal/audit"
	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/storage"
)

// ErrInvalidInput is returned when a request fails validation. No record is
// touched when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// SummaryObserver is told how long each summary computation took.
type SummaryObserver interface {
	ObserveSummary(d time.Duration, periods int, err error)
}

// Ledger coordinates validation, persistence and reconciliation.
type Ledger struct {
	store    storage.Store
	loc      *time.Location
	validate *validator.Validate
	audit    audit.Logger
	observer SummaryObserver
	now      func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLocation sets the time zone used to derive period keys and to parse
// calendar dates. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithAuditLogger sends mutation events to logger.
func WithAuditLogger(logger audit.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.audit = logger
		}
	}
}

// WithSummaryObserver reports the duration and outcome of every summary to obs.
func WithSummaryObserver(obs SummaryObserver) Option {
	return func(l *Ledger) {
		l.observer = obs
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates a Ledger on top of store. The caller owns store and closes it.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:    store,
		loc:      time.Local,
		validate: newValidator(),
		audit:    audit.Discard,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Location returns the ledger's time zone.
func (l *Ledger) Location() *time.Location {
	return l.loc
}

func (l *Ledger) emit(eventType string, id int64, fields ...string) {
	opts := []audit.EventOption{
		audit.WithType(eventType),
		audit.WithField("id", strconv.FormatInt(id, 10)),
	}
	for i := 0; i+1 < len(fields); i += 2 {
		opts = append(opts, audit.WithField(fields[i], fields[i+1]))
	}
	l.audit.Log(audit.NewEvent(opts...))
}

// stakeholderIndex maps stakeholder IDs to records.
func stakeholderIndex(stakeholders []models.Stakeholder) map[int64]models.Stakeholder {
	idx := make(map[int64]models.Stakeholder, len(stakeholders))
	for _, s := range stakeholders {
		idx[s.ID] = s
	}
	return idx
}
