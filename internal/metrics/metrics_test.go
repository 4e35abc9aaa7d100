package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/middleware"
	"github.com/mmynk/profitshare/internal/storage"
)

var (
	_ middleware.RPCObserver = (*Metrics)(nil)
	_ ledger.SummaryObserver = (*Metrics)(nil)
	_ storage.RetryObserver  = (*Metrics)(nil)
)

// scrape returns the text exposition served by the metrics handler.
func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func assertContains(t *testing.T, body string, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if !strings.Contains(body, line) {
			t.Errorf("metrics output missing %q", line)
		}
	}
}

func TestObserveSummary(t *testing.T) {
	m := New()

	m.ObserveSummary(10*time.Millisecond, 3, nil)
	m.ObserveSummary(time.Millisecond, 0, errors.New("no active stakeholders"))
	m.ObserveSummary(time.Millisecond, 2, nil)

	assertContains(t, scrape(t, m),
		`profitshare_summaries_total{outcome="ok"} 2`,
		`profitshare_summaries_total{outcome="error"} 1`,
		`profitshare_summary_periods 2`,
		`profitshare_summary_duration_seconds_count 3`,
	)
}

func TestObserveRPCAndRetry(t *testing.T) {
	m := New()

	m.ObserveRPC("/profitshare.v1.SummaryService/GetSummary", "ok", 5*time.Millisecond)
	m.ObserveRPC("/profitshare.v1.SummaryService/GetSummary", "ok", 5*time.Millisecond)
	m.ObserveRPC("/profitshare.v1.PaymentService/GetPayment", "not_found", time.Millisecond)
	m.ObserveRetry("CreatePayment")

	assertContains(t, scrape(t, m),
		`profitshare_rpc_requests_total{code="ok",procedure="/profitshare.v1.SummaryService/GetSummary"} 2`,
		`profitshare_rpc_requests_total{code="not_found",procedure="/profitshare.v1.PaymentService/GetPayment"} 1`,
		`profitshare_store_retries_total{op="CreatePayment"} 1`,
	)
}

func TestHandlerIncludesRuntimeMetrics(t *testing.T) {
	assertContains(t, scrape(t, New()), "go_goroutines")
}
