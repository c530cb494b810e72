// Package metrics defines the prometheus collectors for the document store.
// There is no exposition endpoint in this process; an embedding program can
// pass its own registry and scrape or push however it likes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors incremented by the repository.
type Metrics struct {
	// DocumentSaves counts attempted whole-document writes.
	DocumentSaves prometheus.Counter

	// SaveFailures counts writes rejected by the storage backend.
	SaveFailures prometheus.Counter

	// SaveDuration observes whole-document write latency in seconds.
	SaveDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg. A nil registry is
// allowed, the collectors then stay unregistered (useful in tests).
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DocumentSaves: factory.NewCounter(prometheus.CounterOpts{
			Name: "fitsync_document_saves_total",
			Help: "Number of attempted whole-document saves.",
		}),
		SaveFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "fitsync_document_save_failures_total",
			Help: "Number of document saves rejected by storage.",
		}),
		SaveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitsync_document_save_duration_seconds",
			Help:    "Whole-document save latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
