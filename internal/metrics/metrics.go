// Package metrics exposes Prometheus instrumentation for the server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "profitshare"

// Metrics holds the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests  *prometheus.CounterVec
	rpcDuration  *prometheus.HistogramVec
	summaries    *prometheus.CounterVec
	summaryTime  prometheus.Histogram
	periods      prometheus.Gauge
	storeRetries *prometheus.CounterVec
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_total",
			Help:      "Financial summaries computed, by outcome.",
		}, []string{"outcome"}),
		summaryTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_duration_seconds",
			Help:      "Time spent loading records and building a summary.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}),
		periods: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "summary_periods",
			Help:      "Number of periods in the most recent successful summary.",
		}),
		storeRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_retries_total",
			Help:      "Store operations retried after a transient failure.",
		}, []string{"op"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.summaries,
		m.summaryTime,
		m.periods,
		m.storeRetries,
	)
	return m
}

// Registry returns the registry backing the handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRPC implements middleware.RPCObserver.
func (m *Metrics) ObserveRPC(procedure, code string, duration time.Duration) {
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(duration.Seconds())
}

// ObserveSummary implements ledger.SummaryObserver.
func (m *Metrics) ObserveSummary(d time.Duration, periods int, err error) {
	m.summaryTime.Observe(d.Seconds())
	if err != nil {
		m.summaries.WithLabelValues("error").Inc()
		return
	}
	m.summaries.WithLabelValues("ok").Inc()
	m.periods.Set(float64(periods))
}

// ObserveRetry implements storage.RetryObserver.
func (m *Metrics) ObserveRetry(op string) {
	m.storeRetries.WithLabelValues(op).Inc()
}
