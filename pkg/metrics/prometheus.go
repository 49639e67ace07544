// Package metrics implements the domain Metrics interface with
// Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain/repository.Metrics using Prometheus.
type Recorder struct {
	queriesTotal    *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	broadcastsTotal prometheus.Counter
	subscriberDrops prometheus.Counter
	subscribers     prometheus.Gauge
}

// New creates a Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		queriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradegenie_queries_total",
				Help: "Total number of intelligence queries by metric and provenance",
			},
			[]string{"metric", "source"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradegenie_cache_hits_total",
				Help: "Cache hits by metric",
			},
			[]string{"metric"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradegenie_cache_misses_total",
				Help: "Cache misses by metric",
			},
			[]string{"metric"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tradegenie_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		broadcastsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tradegenie_broadcasts_total",
				Help: "Total number of market-update broadcasts",
			},
		),
		subscriberDrops: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tradegenie_subscriber_drops_total",
				Help: "Subscribers dropped for missing the send deadline",
			},
		),
		subscribers: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tradegenie_subscribers",
				Help: "Current number of broadcast subscribers",
			},
		),
	}
}

// RecordQuery records an intelligence query by kind and provenance.
func (r *Recorder) RecordQuery(metric, source string) {
	r.queriesTotal.WithLabelValues(metric, source).Inc()
}

// RecordCacheHit records a cache hit for a metric kind.
func (r *Recorder) RecordCacheHit(metric string) {
	r.cacheHits.WithLabelValues(metric).Inc()
}

// RecordCacheMiss records a cache miss for a metric kind.
func (r *Recorder) RecordCacheMiss(metric string) {
	r.cacheMisses.WithLabelValues(metric).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordBroadcast records a completed broadcast fan-out.
func (r *Recorder) RecordBroadcast(subscribers int) {
	r.broadcastsTotal.Inc()
	r.subscribers.Set(float64(subscribers))
}

// RecordSubscriberDrop records a subscriber dropped for being slow.
func (r *Recorder) RecordSubscriberDrop() {
	r.subscriberDrops.Inc()
}

// SetSubscribers updates the current subscriber gauge.
func (r *Recorder) SetSubscribers(n int) {
	r.subscribers.Set(float64(n))
}
