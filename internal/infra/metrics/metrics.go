// Package metrics holds the Prometheus collectors for upstream fetches.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for fetch attempts.
const (
	OutcomeOK                = "ok"
	OutcomeNotFound          = "not_found"
	OutcomeTransient         = "transient"
	OutcomeMalformedResponse = "malformed_response"
)

// Fetch counts upstream attempts and times them.
type Fetch struct {
	Attempts *prometheus.CounterVec
	Retries  prometheus.Counter
	Duration prometheus.Histogram
}

// NewFetch registers the fetch collectors on reg. A nil reg uses a private
// registry so callers that do not export metrics need no wiring.
func NewFetch(reg prometheus.Registerer) *Fetch {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Fetch{
		Attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "commonmeta",
			Subsystem: "upstream",
			Name:      "fetch_attempts_total",
			Help:      "Upstream fetch attempts by outcome.",
		}, []string{"outcome"}),
		Retries: f.NewCounter(prometheus.CounterOpts{
			Namespace: "commonmeta",
			Subsystem: "upstream",
			Name:      "fetch_retries_total",
			Help:      "Upstream fetch attempts scheduled after a transient failure.",
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "commonmeta",
			Subsystem: "upstream",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of single upstream fetch attempts.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Observe records one attempt.
func (f *Fetch) Observe(outcome string, seconds float64) {
	if f == nil {
		return
	}
	f.Attempts.WithLabelValues(outcome).Inc()
	f.Duration.Observe(seconds)
}

// Retry records that another attempt was scheduled.
func (f *Fetch) Retry() {
	if f == nil {
		return
	}
	f.Retries.Inc()
}
