package ledger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/audit"
	"github.com/mmynk/profitshare/internal/calculator"
	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/storage"
	"github.com/mmynk/profitshare/internal/storage/sqlite"
)

type recordingAudit struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

func (r *recordingAudit) Log(e models.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingAudit) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

type recordingObserver struct {
	calls   int
	periods int
	err     error
}

func (r *recordingObserver) ObserveSummary(d time.Duration, periods int, err error) {
	r.calls++
	r.periods = periods
	r.err = err
}

func setupTestLedger(t *testing.T, opts ...Option) (*Ledger, storage.Store) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "profitshare-ledger-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	return New(store, opts...), store
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func assertAmount(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

func mustCreateStakeholder(t *testing.T, l *Ledger, name string) *models.Stakeholder {
	t.Helper()
	s := &models.Stakeholder{Name: name, Active: true}
	if err := l.CreateStakeholder(context.Background(), s); err != nil {
		t.Fatalf("CreateStakeholder(%s) failed: %v", name, err)
	}
	return s
}

func mustCreateTransaction(t *testing.T, l *Ledger, typ models.TransactionType, amount string, when time.Time) {
	t.Helper()
	tx := &models.Transaction{
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Date:        when,
		Description: string(typ) + " " + amount,
	}
	if err := l.CreateTransaction(context.Background(), tx); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
}

func TestLedger_SummaryAfterPayments(t *testing.T) {
	l, _ := setupTestLedger(t)
	ctx := context.Background()

	alice := mustCreateStakeholder(t, l, "Alice")
	bob := mustCreateStakeholder(t, l, "Bob")
	mustCreateTransaction(t, l, models.TransactionProfit, "5000", date(2024, time.March, 5))
	mustCreateTransaction(t, l, models.TransactionCost, "1200", date(2024, time.March, 20))

	summary, err := l.Summary(ctx, calculator.DateRange{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summary.MonthlyCalculations) != 1 || summary.MonthlyCalculations[0].Month != "2024-3" {
		t.Fatalf("Unexpected months: %+v", summary.MonthlyCalculations)
	}
	assertAmount(t, "alice share", summary.MonthlyCalculations[0].StakeholderShares[alice.ID], "1900")
	assertAmount(t, "bob share", summary.MonthlyCalculations[0].StakeholderShares[bob.ID], "1900")

	// Zero-padded month input is stored in canonical form.
	period := &models.Payment{StakeholderID: alice.ID, Amount: decimal.NewFromInt(900), Date: date(2024, time.April, 1), Month: "2024-03"}
	if err := l.RecordPayment(ctx, period); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if period.Month != "2024-3" {
		t.Errorf("Month = %q, want 2024-3", period.Month)
	}

	global := &models.Payment{StakeholderID: alice.ID, Amount: decimal.NewFromInt(500), Date: date(2024, time.April, 2)}
	if err := l.RecordPayment(ctx, global); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}

	summary, err = l.Summary(ctx, calculator.DateRange{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	march := summary.MonthlyCalculations[0]
	assertAmount(t, "alice period remaining", march.StakeholderPayments[alice.ID].Remaining, "1000")
	assertAmount(t, "bob period remaining", march.StakeholderPayments[bob.ID].Remaining, "1900")
	assertAmount(t, "alice global remaining", summary.StakeholderBalances[alice.ID].Remaining, "1400")
	assertAmount(t, "bob global remaining", summary.StakeholderBalances[bob.ID].Remaining, "1900")
}

func TestLedger_SummaryUsesLedgerTimeZone(t *testing.T) {
	tz := time.FixedZone("UTC+2", 2*60*60)
	l, _ := setupTestLedger(t, WithLocation(tz))
	mustCreateStakeholder(t, l, "Alice")

	// 23:30 UTC on March 31 is already April 1 in UTC+2.
	mustCreateTransaction(t, l, models.TransactionProfit, "100",
		time.Date(2024, time.March, 31, 23, 30, 0, 0, time.UTC))

	summary, err := l.Summary(context.Background(), calculator.DateRange{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if got := summary.MonthlyCalculations[0].Month; got != "2024-4" {
		t.Errorf("Month = %q, want 2024-4", got)
	}
}

func TestLedger_SummaryWithoutActiveStakeholders(t *testing.T) {
	obs := &recordingObserver{}
	l, _ := setupTestLedger(t, WithSummaryObserver(obs))
	ctx := context.Background()

	// No transactions: nothing to allocate, so an empty summary.
	summary, err := l.Summary(ctx, calculator.DateRange{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summary.MonthlyCalculations) != 0 {
		t.Errorf("Expected no months, got %d", len(summary.MonthlyCalculations))
	}

	mustCreateTransaction(t, l, models.TransactionProfit, "100", date(2024, time.January, 1))
	_, err = l.Summary(ctx, calculator.DateRange{})
	if !errors.Is(err, calculator.ErrNoActiveStakeholders) {
		t.Errorf("Expected ErrNoActiveStakeholders, got %v", err)
	}

	if obs.calls != 2 {
		t.Errorf("Observer called %d times, want 2", obs.calls)
	}
	if !errors.Is(obs.err, calculator.ErrNoActiveStakeholders) {
		t.Errorf("Observer saw error %v", obs.err)
	}
}

func TestLedger_SummaryDateRange(t *testing.T) {
	l, _ := setupTestLedger(t)
	mustCreateStakeholder(t, l, "Alice")
	mustCreateTransaction(t, l, models.TransactionProfit, "100", date(2024, time.January, 15))
	mustCreateTransaction(t, l, models.TransactionProfit, "200", date(2024, time.February, 29))
	mustCreateTransaction(t, l, models.TransactionProfit, "400", date(2024, time.March, 1))

	r, err := l.ParseRange("2024-02-01", "2024-02-29")
	if err != nil {
		t.Fatalf("ParseRange failed: %v", err)
	}
	summary, err := l.Summary(context.Background(), r)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summary.MonthlyCalculations) != 1 || summary.MonthlyCalculations[0].Month != "2024-2" {
		t.Fatalf("Unexpected months: %+v", summary.MonthlyCalculations)
	}
	assertAmount(t, "total profit", summary.TotalProfit, "200")

	if _, err := l.ParseRange("2024-03-01", "2024-02-01"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for inverted range, got %v", err)
	}
	if _, err := l.ParseRange("March", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for malformed date, got %v", err)
	}
}

func TestLedger_Validation(t *testing.T) {
	l, store := setupTestLedger(t)
	ctx := context.Background()
	alice := mustCreateStakeholder(t, l, "Alice")

	tests := []struct {
		name    string
		run     func() error
		wantMsg string
	}{
		{
			name: "transaction with unknown type",
			run: func() error {
				return l.CreateTransaction(ctx, &models.Transaction{Type: "refund", Amount: decimal.NewFromInt(1), Date: date(2024, 1, 1), Description: "x"})
			},
			wantMsg: "type must be one of",
		},
		{
			name: "transaction with zero amount",
			run: func() error {
				return l.CreateTransaction(ctx, &models.Transaction{Type: models.TransactionCost, Date: date(2024, 1, 1), Description: "x"})
			},
			wantMsg: "amount must be greater than 0",
		},
		{
			name: "transaction without date",
			run: func() error {
				return l.CreateTransaction(ctx, &models.Transaction{Type: models.TransactionCost, Amount: decimal.NewFromInt(1), Description: "x"})
			},
			wantMsg: "date is required",
		},
		{
			name: "transaction with blank description",
			run: func() error {
				return l.CreateTransaction(ctx, &models.Transaction{Type: models.TransactionCost, Amount: decimal.NewFromInt(1), Date: date(2024, 1, 1), Description: "   "})
			},
			wantMsg: "description is required",
		},
		{
			name: "stakeholder with blank name",
			run: func() error {
				return l.CreateStakeholder(ctx, &models.Stakeholder{Name: " "})
			},
			wantMsg: "name is required",
		},
		{
			name: "payment with negative amount",
			run: func() error {
				return l.RecordPayment(ctx, &models.Payment{StakeholderID: alice.ID, Amount: decimal.NewFromInt(-5), Date: date(2024, 1, 1)})
			},
			wantMsg: "amount must be greater than 0",
		},
		{
			name: "payment with malformed month",
			run: func() error {
				return l.RecordPayment(ctx, &models.Payment{StakeholderID: alice.ID, Amount: decimal.NewFromInt(5), Date: date(2024, 1, 1), Month: "2024-13"})
			},
			wantMsg: "month must be a month in YYYY-M form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}

	// Nothing was persisted by the rejected calls.
	txs, _ := store.ListTransactions(ctx)
	payments, _ := store.ListPayments(ctx)
	if len(txs) != 0 || len(payments) != 0 {
		t.Errorf("Expected no records, got %d transactions and %d payments", len(txs), len(payments))
	}
}

func TestLedger_RecordPaymentUnknownStakeholder(t *testing.T) {
	l, _ := setupTestLedger(t)

	err := l.RecordPayment(context.Background(), &models.Payment{StakeholderID: 42, Amount: decimal.NewFromInt(5), Date: date(2024, 1, 1)})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLedger_Stakeholders(t *testing.T) {
	rec := &recordingAudit{}
	l, _ := setupTestLedger(t, WithAuditLogger(rec))
	ctx := context.Background()

	alice := mustCreateStakeholder(t, l, "Alice")
	bob := mustCreateStakeholder(t, l, "Bob")

	t.Run("duplicate name", func(t *testing.T) {
		err := l.CreateStakeholder(ctx, &models.Stakeholder{Name: "Alice"})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("blank rename is rejected", func(t *testing.T) {
		blank := "  "
		_, err := l.UpdateStakeholder(ctx, alice.ID, models.StakeholderUpdate{Name: &blank})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("delete with payments is refused, deactivation works", func(t *testing.T) {
		if err := l.RecordPayment(ctx, &models.Payment{StakeholderID: alice.ID, Amount: decimal.NewFromInt(5), Date: date(2024, 1, 1)}); err != nil {
			t.Fatalf("RecordPayment failed: %v", err)
		}
		if err := l.DeleteStakeholder(ctx, alice.ID); !errors.Is(err, storage.ErrHasPayments) {
			t.Fatalf("Expected ErrHasPayments, got %v", err)
		}

		inactive := false
		got, err := l.UpdateStakeholder(ctx, alice.ID, models.StakeholderUpdate{Active: &inactive})
		if err != nil {
			t.Fatalf("UpdateStakeholder failed: %v", err)
		}
		if got.Active {
			t.Error("Expected stakeholder to be inactive")
		}

		detail, err := l.GetStakeholder(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetStakeholder failed: %v", err)
		}
		if len(detail.Payments) != 1 {
			t.Errorf("Expected 1 payment in history, got %d", len(detail.Payments))
		}
	})

	t.Run("delete without payments", func(t *testing.T) {
		if err := l.DeleteStakeholder(ctx, bob.ID); err != nil {
			t.Fatalf("DeleteStakeholder failed: %v", err)
		}
	})

	want := []string{
		audit.StakeholderCreated,
		audit.StakeholderCreated,
		audit.PaymentRecorded,
		audit.StakeholderUpdated,
		audit.StakeholderDeleted,
	}
	got := rec.types()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Audit events = %v, want %v", got, want)
	}
}

func TestLedger_UpdatePayment(t *testing.T) {
	l, _ := setupTestLedger(t)
	ctx := context.Background()
	alice := mustCreateStakeholder(t, l, "Alice")
	bob := mustCreateStakeholder(t, l, "Bob")

	p := &models.Payment{StakeholderID: alice.ID, Amount: decimal.NewFromInt(100), Date: date(2024, 5, 1), Month: "2024-4"}
	if err := l.RecordPayment(ctx, p); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}

	t.Run("move to another stakeholder and normalize month", func(t *testing.T) {
		month := "2024-05"
		got, err := l.UpdatePayment(ctx, p.ID, models.PaymentUpdate{StakeholderID: &bob.ID, Month: &month})
		if err != nil {
			t.Fatalf("UpdatePayment failed: %v", err)
		}
		if got.StakeholderID != bob.ID || got.Month != "2024-5" {
			t.Errorf("Unexpected payment: %+v", got)
		}

		detail, err := l.GetPayment(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetPayment failed: %v", err)
		}
		if detail.Stakeholder.Name != "Bob" {
			t.Errorf("Stakeholder = %q, want Bob", detail.Stakeholder.Name)
		}
	})

	t.Run("unknown target stakeholder", func(t *testing.T) {
		missing := int64(999)
		_, err := l.UpdatePayment(ctx, p.ID, models.PaymentUpdate{StakeholderID: &missing})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list includes stakeholder", func(t *testing.T) {
		list, err := l.ListPayments(ctx)
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(list) != 1 || list[0].Stakeholder.ID != bob.ID {
			t.Errorf("Unexpected payments: %+v", list)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := l.DeletePayment(ctx, p.ID); err != nil {
			t.Fatalf("DeletePayment failed: %v", err)
		}
		if _, err := l.GetPayment(ctx, p.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestLedger_UpdateTransaction(t *testing.T) {
	l, _ := setupTestLedger(t)
	ctx := context.Background()
	mustCreateStakeholder(t, l, "Alice")
	mustCreateTransaction(t, l, models.TransactionProfit, "100", date(2024, 1, 10))

	txs, err := l.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	id := txs[0].ID

	zero := decimal.Zero
	if _, err := l.UpdateTransaction(ctx, id, models.TransactionUpdate{Amount: &zero}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	costType := models.TransactionCost
	got, err := l.UpdateTransaction(ctx, id, models.TransactionUpdate{Type: &costType})
	if err != nil {
		t.Fatalf("UpdateTransaction failed: %v", err)
	}
	if got.Type != models.TransactionCost {
		t.Errorf("Type = %s, want cost", got.Type)
	}

	summary, err := l.Summary(ctx, calculator.DateRange{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	assertAmount(t, "balance", summary.TotalBalance, "-100")
	assertAmount(t, "share of a loss month", summary.MonthlyCalculations[0].StakeholderShares[1], "0")

	if err := l.DeleteTransaction(ctx, id); err != nil {
		t.Fatalf("DeleteTransaction failed: %v", err)
	}
	if err := l.DeleteTransaction(ctx, id); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLedger_EnsureDefaultStakeholders(t *testing.T) {
	l, _ := setupTestLedger(t)
	ctx := context.Background()

	n, err := l.EnsureDefaultStakeholders(ctx)
	if err != nil {
		t.Fatalf("EnsureDefaultStakeholders failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Created %d stakeholders, want 2", n)
	}

	n, err = l.EnsureDefaultStakeholders(ctx)
	if err != nil {
		t.Fatalf("EnsureDefaultStakeholders failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Second call created %d stakeholders, want 0", n)
	}

	all, _ := l.ListStakeholders(ctx)
	if len(all) != 2 || all[0].Name != "Stakeholder 1" || !all[1].Active {
		t.Errorf("Unexpected stakeholders: %+v", all)
	}
}

func TestLedger_ParseDate(t *testing.T) {
	l, _ := setupTestLedger(t)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), false},
		{"", time.Time{}, true},
		{"15/03/2024", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := l.ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLedger_SeedSampleTransactions(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC) }
	l, _ := setupTestLedger(t, WithClock(clock))
	ctx := context.Background()
	mustCreateStakeholder(t, l, "Alice")

	n, err := l.SeedSampleTransactions(ctx)
	if err != nil {
		t.Fatalf("SeedSampleTransactions failed: %v", err)
	}
	if n != 4 {
		t.Errorf("Created %d transactions, want 4", n)
	}
	if n, _ := l.SeedSampleTransactions(ctx); n != 0 {
		t.Errorf("Second call created %d transactions, want 0", n)
	}

	summary, err := l.Summary(ctx, calculator.DateRange{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	// Months wrap into the previous year.
	if len(summary.MonthlyCalculations) != 2 ||
		summary.MonthlyCalculations[0].Month != "2023-11" ||
		summary.MonthlyCalculations[1].Month != "2023-12" {
		t.Fatalf("Unexpected months: %+v", summary.MonthlyCalculations)
	}
	assertAmount(t, "November balance", summary.MonthlyCalculations[0].Balance, "2700")
	assertAmount(t, "December balance", summary.MonthlyCalculations[1].Balance, "3800")
}
