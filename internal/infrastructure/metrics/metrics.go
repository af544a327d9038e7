package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commerce search API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "commerce",
			Subsystem: "search_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "commerce",
			Subsystem: "search_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	// Search link build outcomes
	SearchLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "commerce",
			Subsystem: "search_api",
			Name:      "search_links_total",
			Help:      "Total search link builds by platform and outcome",
		},
		[]string{"platform", "outcome"},
	)
)

// Build outcome label values
const (
	OutcomeSuccess     = "success"
	OutcomeUnsupported = "unsupported_platform"
	OutcomeInvalid     = "invalid_request"
	OutcomeInternal    = "internal_error"
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordSearchLink records the outcome of one search link build.
// Unknown platform ids are collapsed into a single label to keep cardinality bounded.
func RecordSearchLink(platform, outcome string) {
	if outcome == OutcomeUnsupported || platform == "" {
		platform = "unknown"
	}
	SearchLinksTotal.WithLabelValues(platform, outcome).Inc()
}

// Handler exposes the default Prometheus registry
func Handler() http.Handler {
	return promhttp.Handler()
}
