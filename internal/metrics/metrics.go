// Package metrics exposes Prometheus counters for report computation and
// cache behavior. Served on /metrics via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the service's Prometheus metrics.
type Collector struct {
	ReportComputations *prometheus.CounterVec
	CacheHits          *prometheus.CounterVec
	CacheMisses        *prometheus.CounterVec
	IngestedTotal      prometheus.Counter
	IngestRejected     prometheus.Counter
}

// NewCollector registers the service metrics on the given registerer.
// Passing nil uses the default registry.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		ReportComputations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_computations_total",
				Help:      "Total number of report computations per report kind",
			},
			[]string{"report"},
		),
		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_cache_hits_total",
				Help:      "Total number of report cache hits per report kind",
			},
			[]string{"report"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_cache_misses_total",
				Help:      "Total number of report cache misses per report kind",
			},
			[]string{"report"},
		),
		IngestedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_ingested_total",
				Help:      "Total number of transactions ingested from the feed",
			},
		),
		IngestRejected: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_rejected_total",
				Help:      "Total number of feed events rejected as malformed",
			},
		),
	}
}
