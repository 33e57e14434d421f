package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Extractions counts payload builds by format and outcome.
	Extractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kpihook_extractions_total",
			Help: "Hook payload extractions by format and outcome",
		},
		[]string{"format", "outcome"},
	)

	// ExtractionDuration tracks the time spent fetching and subsetting a submission.
	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kpihook_extraction_seconds",
			Help:    "Hook payload extraction time in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)

	// InvalidFieldSpecs counts subset fields skipped because they cannot be resolved.
	InvalidFieldSpecs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kpihook_invalid_subset_fields_total",
			Help: "Configured subset fields that were ignored",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kpihook_http_requests_total",
			Help: "HTTP requests by method and status code",
		},
		[]string{"method", "code"},
	)
)

// ObserveExtraction records one extraction.
func ObserveExtraction(format, outcome string, started time.Time) {
	Extractions.WithLabelValues(format, outcome).Inc()
	ExtractionDuration.WithLabelValues(format).Observe(time.Since(started).Seconds())
}
