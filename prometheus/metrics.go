package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"rvintel-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Snapshot refresh metrics
	RefreshDuration prometheus.Histogram
	RefreshFailures prometheus.Counter
	InventoryUnits  prometheus.Gauge
	FactsDropped    prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_snapshot_refresh_duration_seconds",
			Help:    "Duration of warehouse snapshot refreshes in seconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	RefreshFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_snapshot_refresh_failures_total",
			Help: "Total number of failed warehouse snapshot refreshes",
		},
	)

	InventoryUnits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_inventory_units",
			Help: "Enriched inventory units in the current snapshot",
		},
	)

	FactsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_facts_dropped_total",
			Help: "Fact rows dropped during enrichment for missing stock numbers",
		},
	)
}

// ObserveRefresh records one successful snapshot refresh.
func ObserveRefresh(start time.Time, units, dropped int) {
	if RefreshDuration == nil {
		return
	}
	RefreshDuration.Observe(time.Since(start).Seconds())
	InventoryUnits.Set(float64(units))
	FactsDropped.Add(float64(dropped))
}

// RecordRefreshFailure counts a failed refresh attempt.
func RecordRefreshFailure() {
	if RefreshFailures == nil {
		return
	}
	RefreshFailures.Inc()
}
