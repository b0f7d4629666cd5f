package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "table"},
	)

	// Record Metrics
	RecordOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_operations_total",
			Help: "Total number of record operations",
		},
		[]string{"kind", "operation"}, // tasks/events/ideas, create/delete
	)

	// Cache Metrics
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_cache_hits_total",
			Help: "List cache lookups by outcome",
		},
		[]string{"collection", "outcome"}, // hit/miss
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type", "reason"},
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, table string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, table))
}

// TrackRecordOperation increments the record operation counter
func TrackRecordOperation(kind, operation string) {
	RecordOperationsTotal.WithLabelValues(kind, operation).Inc()
}

// TrackCacheLookup records a cache hit or miss for a collection
func TrackCacheLookup(collection, outcome string) {
	CacheHitsTotal.WithLabelValues(collection, outcome).Inc()
}

// TrackError increments the error counter by type
func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}
