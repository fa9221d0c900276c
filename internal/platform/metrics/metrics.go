package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Auth
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"result"}, // success|failure
	)
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Successfully registered users",
		},
	)

	// Content
	ProblemsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "problems_created_total",
			Help: "Problems created through the API",
		},
	)
	CommentsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Comments posted",
		},
	)

	// Presence sweeper
	PresencePrunedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "presence_pruned_total",
			Help: "Stale presence entries removed by the sweeper",
		},
	)

	initOnce sync.Once
)

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			HTTPLatency,
			LoginsTotal,
			RegistrationsTotal,
			ProblemsCreatedTotal,
			CommentsCreatedTotal,
			PresencePrunedTotal,
		)
	})
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
