package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation names used as the "operation" label
const (
	OperationSearch = "search"
	OperationAlert  = "alert"
	OperationNews   = "news"
)

// Outcome values used as the "outcome" label
const (
	OutcomeLive                = "live"
	OutcomeFallbackUnavailable = "fallback_unavailable"
	OutcomeFallbackEmpty       = "fallback_empty"
	OutcomeFallbackError       = "fallback_error"
	OutcomeFallbackParse       = "fallback_parse"
)

// Metrics holds all Prometheus metrics for the portal service
type Metrics struct {
	// Generative backend metrics
	BackendRequests        *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec
	NewsItemsServed        prometheus.Counter

	// Feedback metrics
	FeedbackSubmissions prometheus.Counter
	FeedbackErrors      *prometheus.CounterVec

	// HTTP metrics
	RateLimited *prometheus.CounterVec
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

// NewMetrics creates a new Metrics instance registered with the default registry
func NewMetrics() *Metrics {
	return &Metrics{
		BackendRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_service_backend_requests_total",
				Help: "Total number of content operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		BackendRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_service_backend_request_duration_seconds",
				Help:    "Duration of generative backend calls in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),
		NewsItemsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portal_service_news_items_served_total",
			Help: "Total number of news items returned to callers",
		}),
		FeedbackSubmissions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portal_service_feedback_submissions_total",
			Help: "Total number of stored contact feedback submissions",
		}),
		FeedbackErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_service_feedback_errors_total",
				Help: "Total number of contact feedback errors",
			},
			[]string{"error_type"},
		),
		RateLimited: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_service_rate_limited_total",
				Help: "Total number of requests rejected by rate limiting",
			},
			[]string{"route"},
		),
	}
}

// RecordOutcome records how a content operation was resolved
func (m *Metrics) RecordOutcome(operation, outcome string) {
	m.BackendRequests.WithLabelValues(operation, outcome).Inc()
}

// RecordBackendDuration records the latency of one backend call
func (m *Metrics) RecordBackendDuration(operation string, seconds float64) {
	m.BackendRequestDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordNewsServed records the number of news items handed to a caller
func (m *Metrics) RecordNewsServed(count int) {
	// Only add positive values to prevent counter from going backwards
	if count > 0 {
		m.NewsItemsServed.Add(float64(count))
	}
}

// RecordFeedback records a stored feedback submission
func (m *Metrics) RecordFeedback() {
	m.FeedbackSubmissions.Inc()
}

// RecordFeedbackError records a feedback error with error type
func (m *Metrics) RecordFeedbackError(errorType string) {
	if errorType == "" {
		errorType = "unknown"
	}
	m.FeedbackErrors.WithLabelValues(errorType).Inc()
}

// RecordRateLimited records a rejected request for route
func (m *Metrics) RecordRateLimited(route string) {
	m.RateLimited.WithLabelValues(route).Inc()
}
