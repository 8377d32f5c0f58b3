// Package metrics holds the prometheus collectors of the site.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// FormSubmissions counts contact and newsletter submissions by outcome.
	FormSubmissions = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: "vinoteka",
			Name:      "form_submissions_total",
			Help:      "Number of form submissions, by form and outcome.",
		},
		[]string{"form", "outcome"},
	)

	// CatalogQueryDuration observes catalog store calls.
	CatalogQueryDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
		prometheus.HistogramOpts{
			Namespace: "vinoteka",
			Name:      "catalog_query_duration_seconds",
			Help:      "Duration of catalog count and window queries.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"query", "outcome"},
	)

	// StaleRefetches counts listing responses discarded because a newer
	// refetch was issued meanwhile.
	StaleRefetches = promauto.NewCounter( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: "vinoteka",
			Name:      "listing_stale_refetches_total",
			Help:      "Number of listing refetch results discarded as stale.",
		},
	)
)

// ObserveQuery records one catalog query started at start.
func ObserveQuery(query string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	CatalogQueryDuration.WithLabelValues(query, outcome).Observe(time.Since(start).Seconds())
}

// CountSubmission records the outcome of one form submission.
func CountSubmission(form, outcome string) {
	FormSubmissions.WithLabelValues(form, outcome).Inc()
}
