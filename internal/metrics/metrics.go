// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PyEED/aligner/core/engine"
)

// Collector tracks pair throughput for Prometheus scraping. It satisfies
// engine.Ticker, so the engine counts processed pairs on it directly.
type Collector struct {
	pairs   prometheus.Counter
	aligned prometheus.Counter
	skipped prometheus.Counter
	elapsed prometheus.Histogram
}

// NewCollector creates and registers the aligner metrics on the default
// registry.
func NewCollector() *Collector {
	c := &Collector{
		pairs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aligner_pairs_total",
			Help: "Total number of sequence pairs processed, including self-pairs.",
		}),
		aligned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aligner_aligned_total",
			Help: "Total number of pairs that ran the global aligner.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aligner_skipped_total",
			Help: "Total number of pairs skipped by the k-mer prefilter.",
		}),
		elapsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "aligner_align_seconds",
			Help:    "Per-pair prefilter plus alignment wall time in seconds.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}
	prometheus.MustRegister(c.pairs, c.aligned, c.skipped, c.elapsed)
	return c
}

// Tick counts one processed pair, including self-pairs and skips.
func (c *Collector) Tick() { c.pairs.Inc() }

// RecordResult classifies one emitted result as aligned or skipped.
func (c *Collector) RecordResult(r engine.Result) {
	if r.Score == nil {
		c.skipped.Inc()
		return
	}
	c.aligned.Inc()
	c.elapsed.Observe(r.Elapsed.Seconds())
}

// Serve exposes /metrics on addr; it blocks like http.ListenAndServe.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
