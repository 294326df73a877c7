package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search gateway metrics, registered on the default registry
var (
	// HTTPRequestsTotal counts every served request by route and status
	HTTPRequestsTotal *prometheus.CounterVec

	// SearchRequestsTotal counts search requests by category and outcome
	SearchRequestsTotal *prometheus.CounterVec

	// UpstreamDuration tracks provider latency
	UpstreamDuration *prometheus.HistogramVec
)

// Search outcomes recorded in SearchRequestsTotal
const (
	OutcomeSuccess     = "success"
	OutcomeBadRequest  = "bad_request"
	OutcomeConfigError = "config_error"
	OutcomeUpstream    = "upstream_error"
	OutcomeInternal    = "internal_error"
)

// CategoryUnknown labels searches whose type failed validation
const CategoryUnknown = "unknown"

func init() {
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search_gateway",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search_gateway",
			Name:      "search_requests_total",
			Help:      "Total search requests by category and outcome",
		},
		[]string{"category", "outcome"},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "search_gateway",
			Name:      "upstream_duration_seconds",
			Help:      "Upstream search provider call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"category"},
	)

	prometheus.MustRegister(HTTPRequestsTotal, SearchRequestsTotal, UpstreamDuration)
}

// RecordRequest increments the HTTP request counter
func RecordRequest(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordSearch increments the search outcome counter
func RecordSearch(category, outcome string) {
	SearchRequestsTotal.WithLabelValues(category, outcome).Inc()
}

// ObserveUpstream records the duration of one provider call
func ObserveUpstream(category string, elapsed time.Duration) {
	UpstreamDuration.WithLabelValues(category).Observe(elapsed.Seconds())
}
