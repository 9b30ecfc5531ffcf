// Package metrics holds the Prometheus collectors for credits, transformation
// sessions and HTTP traffic. Each Metrics owns its registry so tests can
// create isolated instances.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

const namespace = "imagecraft"

// Metrics is the set of application collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	creditAdjustments *prometheus.CounterVec
	creditRejections  *prometheus.CounterVec
	applies           *prometheus.CounterVec
	applyRejections   *prometheus.CounterVec
	saves             *prometheus.CounterVec
	activeSessions    prometheus.Gauge
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New creates and registers every collector, plus Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		creditAdjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "credit",
			Name:      "adjustments_total",
			Help:      "Committed credit balance changes by reason and direction.",
		}, []string{"reason", "direction"}),
		creditRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "credit",
			Name:      "rejections_total",
			Help:      "Debits refused because the balance would go negative.",
		}, []string{"reason"}),
		applies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transform",
			Name:      "applies_total",
			Help:      "Successful transformation applies by kind.",
		}, []string{"kind"}),
		applyRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transform",
			Name:      "apply_failures_total",
			Help:      "Failed transformation applies by kind and cause.",
		}, []string{"kind", "cause"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transform",
			Name:      "saves_total",
			Help:      "Persisted image records by form mode.",
		}, []string{"mode"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "transform",
			Name:      "active_sessions",
			Help:      "Transformation sessions currently held in memory.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.creditAdjustments,
		m.creditRejections,
		m.applies,
		m.applyRejections,
		m.saves,
		m.activeSessions,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// CreditAdjusted counts a committed balance change.
func (m *Metrics) CreditAdjusted(reason domain.CreditReason, delta int) {
	if m == nil {
		return
	}
	direction := "credit"
	if delta < 0 {
		direction = "debit"
	}
	m.creditAdjustments.WithLabelValues(reason.String(), direction).Inc()
}

// CreditRejected counts a debit refused for insufficient balance.
func (m *Metrics) CreditRejected(reason domain.CreditReason) {
	if m == nil {
		return
	}
	m.creditRejections.WithLabelValues(reason.String()).Inc()
}

// ApplySucceeded counts a successful apply.
func (m *Metrics) ApplySucceeded(kind domain.TransformationKind) {
	if m == nil {
		return
	}
	m.applies.WithLabelValues(kind.String()).Inc()
}

// ApplyFailed counts a failed apply.
func (m *Metrics) ApplyFailed(kind domain.TransformationKind, cause string) {
	if m == nil {
		return
	}
	m.applyRejections.WithLabelValues(kind.String(), cause).Inc()
}

// ImageSaved counts a persisted image record.
func (m *Metrics) ImageSaved(mode domain.FormMode) {
	if m == nil {
		return
	}
	m.saves.WithLabelValues(mode.String()).Inc()
}

// SessionsActive sets the number of in-memory sessions.
func (m *Metrics) SessionsActive(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(seconds)
}
