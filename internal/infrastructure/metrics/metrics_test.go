package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordOperation("create")
	m.RecordOperation("create")
	m.RecordOperationError("create", "conflict")
	m.RecordOperationError("delete", "")
	m.RecordEngagement("view")
	m.RecordEventPublished("announcement.published", 12*time.Millisecond)
	m.RecordEventPublishError("announcement.deleted")
	m.RecordSearch()
	m.SetIndexedDocuments(42)
	m.ObserveHTTPRequest("GET", "/api/announcements", 200, 3*time.Millisecond)

	require.Equal(t, float64(2), testutil.ToFloat64(m.OperationsTotal.WithLabelValues("create")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.OperationErrors.WithLabelValues("create", "conflict")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.OperationErrors.WithLabelValues("delete", "unknown")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.EngagementTotal.WithLabelValues("view")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.EventsPublished.WithLabelValues("announcement.published")))
	require.Equal(t, float64(42), testutil.ToFloat64(m.SearchIndexedDocs))
}

func TestGetDefaultMetrics_Singleton(t *testing.T) {
	require.Same(t, GetDefaultMetrics(), GetDefaultMetrics())
}
