package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	decisions      *prometheus.CounterVec
	searches       *prometheus.CounterVec
	geocodeLookups *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigmarket_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gigmarket_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigmarket_decisions_total",
			Help: "Gig decisions stored, by decision.",
		}, []string{"decision"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigmarket_searches_total",
			Help: "Gig searches by outcome (hit, empty, skipped).",
		}, []string{"outcome"}),
		geocodeLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigmarket_geocode_lookups_total",
			Help: "Reverse geocoding lookups by outcome.",
		}, []string{"outcome"}),
	}
}

// All recorders below accept a nil receiver so callers can run without metrics.

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) DecisionStored(decision string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) SearchCompleted(outcome string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) GeocodeLookup(outcome string) {
	if m == nil {
		return
	}
	m.geocodeLookups.WithLabelValues(outcome).Inc()
}
