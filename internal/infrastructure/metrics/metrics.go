package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the announcement service
type Metrics struct {
	// Domain operations
	OperationsTotal *prometheus.CounterVec
	OperationErrors *prometheus.CounterVec

	// Engagement
	EngagementTotal *prometheus.CounterVec

	// Event publishing
	EventsPublished     *prometheus.CounterVec
	EventPublishErrors  *prometheus.CounterVec
	EventPublishLatency prometheus.Histogram

	// Search
	SearchQueries     prometheus.Counter
	SearchIndexedDocs prometheus.Gauge

	// HTTP
	HTTPRequestDuration *prometheus.HistogramVec
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return DefaultMetrics
}

// NewMetrics creates all collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "announcement_service_operations_total",
				Help: "Total number of announcement operations handled",
			},
			[]string{"operation"},
		),
		OperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "announcement_service_operation_errors_total",
				Help: "Total number of failed announcement operations",
			},
			[]string{"operation", "error_type"},
		),
		EngagementTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "announcement_service_engagement_total",
				Help: "Views, shares, upvotes and favorites recorded",
			},
			[]string{"kind"},
		),
		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "announcement_service_events_published_total",
				Help: "Total number of announcement events written to Kafka",
			},
			[]string{"event_type"},
		),
		EventPublishErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "announcement_service_event_publish_errors_total",
				Help: "Total number of failed Kafka writes",
			},
			[]string{"event_type"},
		),
		EventPublishLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "announcement_service_event_publish_duration_seconds",
			Help:    "Duration of Kafka writes in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		SearchQueries: factory.NewCounter(prometheus.CounterOpts{
			Name: "announcement_service_search_queries_total",
			Help: "Total number of full-text search queries",
		}),
		SearchIndexedDocs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "announcement_service_search_indexed_documents",
			Help: "Number of announcements currently in the search index",
		}),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "announcement_service_http_request_duration_seconds",
				Help:    "HTTP request latency by method, route and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// RecordOperation counts a handled operation
func (m *Metrics) RecordOperation(operation string) {
	m.OperationsTotal.WithLabelValues(operation).Inc()
}

// RecordOperationError counts a failed operation by error type
func (m *Metrics) RecordOperationError(operation, errorType string) {
	if errorType == "" {
		errorType = "unknown"
	}
	m.OperationErrors.WithLabelValues(operation, errorType).Inc()
}

// RecordEngagement counts a view, share, upvote or favorite
func (m *Metrics) RecordEngagement(kind string) {
	m.EngagementTotal.WithLabelValues(kind).Inc()
}

// RecordEventPublished records a successful Kafka write and its duration
func (m *Metrics) RecordEventPublished(eventType string, duration time.Duration) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
	m.EventPublishLatency.Observe(duration.Seconds())
}

// RecordEventPublishError records a failed Kafka write
func (m *Metrics) RecordEventPublishError(eventType string) {
	m.EventPublishErrors.WithLabelValues(eventType).Inc()
}

// RecordSearch counts a search query
func (m *Metrics) RecordSearch() {
	m.SearchQueries.Inc()
}

// SetIndexedDocuments updates the search index size gauge
func (m *Metrics) SetIndexedDocuments(count uint64) {
	m.SearchIndexedDocs.Set(float64(count))
}

// ObserveHTTPRequest records request latency
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
