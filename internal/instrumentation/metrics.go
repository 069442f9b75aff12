package instrumentation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the controller.
// A nil *Metrics is valid and records nothing, so callers never need
// to branch on whether instrumentation is wired.
type Metrics struct {
	ActionsSubmitted *prometheus.CounterVec
	DispatchLatency  prometheus.Histogram
	CustodyTransfers *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ActionsSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "controller_actions_submitted_total",
			Help: "Total number of action envelopes submitted to the dispatch gateway",
		}, []string{"action"}),

		DispatchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "controller_dispatch_latency_seconds",
			Help:    "Time from envelope submission to transaction inclusion",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		CustodyTransfers: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "controller_custody_transfers_total",
			Help: "Total number of completed custody transfers by kind",
		}, []string{"kind"}),

		ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "controller_errors_total",
			Help: "Total number of errors by component and code",
		}, []string{"component", "code"}),
	}
}

// RecordActionSubmitted increments the submitted-action counter.
func (m *Metrics) RecordActionSubmitted(action string) {
	if m == nil {
		return
	}
	m.ActionsSubmitted.WithLabelValues(action).Inc()
}

// ObserveDispatch records the round trip time of a gateway submission.
func (m *Metrics) ObserveDispatch(d time.Duration) {
	if m == nil {
		return
	}
	m.DispatchLatency.Observe(d.Seconds())
}

// RecordCustodyTransfer increments the custody transfer counter.
func (m *Metrics) RecordCustodyTransfer(kind string) {
	if m == nil {
		return
	}
	m.CustodyTransfers.WithLabelValues(kind).Inc()
}

// RecordError increments the error counter.
func (m *Metrics) RecordError(component, code string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(component, code).Inc()
}
