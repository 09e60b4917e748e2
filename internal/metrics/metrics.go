// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, registrations, and catalog
// mutations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "zenhub"
)

// Registration attempt results used as label values.
const (
	ResultCreated   = "created"
	ResultDuplicate = "duplicate"
	ResultFull      = "full"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Registration metrics - track booking attempts and outcomes
	RegistrationAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registrations",
			Name:      "attempts_total",
			Help:      "Total number of registration attempts by result",
		},
		[]string{"result"},
	)

	// Catalog metrics - track collection sizes and admin activity
	CatalogEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "events",
			Help:      "Current number of events in the catalog",
		},
	)

	CatalogArticles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "articles",
			Help:      "Current number of articles in the catalog",
		},
	)

	AdminMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "mutations_total",
			Help:      "Total number of admin mutations by entity and action",
		},
		[]string{"entity", "action"},
	)
)
