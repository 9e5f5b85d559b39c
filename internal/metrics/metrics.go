// Package metrics exposes Prometheus counters for document parsing and
// takeoff generation. CLI runs can dump them to a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planreader_documents_total",
			Help: "Documents processed, by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	PagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planreader_pages_total",
			Help: "Pages read, by text origin",
		},
		[]string{"origin"},
	)

	LineItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planreader_line_items_total",
			Help: "Supplier line items generated",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planreader_cache_lookups_total",
			Help: "Estimate cache lookups, by result",
		},
		[]string{"result"},
	)

	ProcessDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planreader_process_duration_seconds",
			Help:    "Time from load to stored takeoff",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 180},
		},
		[]string{"kind"},
	)
)

// ObserveDocument records one processed document
func ObserveDocument(kind, outcome string, elapsed time.Duration) {
	if kind == "" {
		kind = "unknown"
	}
	DocumentsTotal.WithLabelValues(kind, outcome).Inc()
	ProcessDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObservePage records the origin of one page's text
func ObservePage(origin string) {
	PagesTotal.WithLabelValues(origin).Inc()
}

// ObserveCache records a cache hit or miss
func ObserveCache(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}

// WriteTextfile writes the default registry in text exposition format.
// An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
