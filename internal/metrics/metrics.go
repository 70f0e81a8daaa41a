package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the collectors for the relay and the registry they live on.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
	panicRecoveries      prometheus.Counter
	upstreamCallsTotal   *prometheus.CounterVec
	upstreamCallDuration *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wep_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wep_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wep_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
		panicRecoveries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wep_panic_recoveries_total",
				Help: "Total number of panics recovered in HTTP handlers",
			},
		),
		upstreamCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wep_upstream_calls_total",
				Help: "Total number of calls to upstream providers",
			},
			[]string{"provider", "operation", "outcome"},
		),
		upstreamCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wep_upstream_call_duration_seconds",
				Help:    "Upstream provider call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "operation"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
		m.panicRecoveries,
		m.upstreamCallsTotal,
		m.upstreamCallDuration,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RequestStarted bumps the in-flight gauge and returns the matching completion func
func (m *Metrics) RequestStarted() func(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return func(string, string, string, time.Duration) {}
	}
	m.httpRequestsInFlight.Inc()
	return func(method, path, status string, elapsed time.Duration) {
		m.httpRequestsInFlight.Dec()
		m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
	}
}

// PanicRecovered counts a recovered handler panic
func (m *Metrics) PanicRecovered() {
	if m == nil {
		return
	}
	m.panicRecoveries.Inc()
}

// ObserveUpstream records one upstream call
func (m *Metrics) ObserveUpstream(provider, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamCallsTotal.WithLabelValues(provider, operation, outcome).Inc()
	m.upstreamCallDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}

// UpstreamCalls exposes the upstream call counter, mainly for tests
func (m *Metrics) UpstreamCalls() *prometheus.CounterVec {
	return m.upstreamCallsTotal
}
