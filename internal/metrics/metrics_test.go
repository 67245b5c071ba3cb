package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"football-championship/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordBatch(t *testing.T) {
	m := metrics.New()

	m.RecordBatch("match", 3, 1)
	m.RecordBatch("match", 2, 0)

	expected := `
# HELP championship_batch_items_total Items of batch submissions by entity and outcome.
# TYPE championship_batch_items_total counter
championship_batch_items_total{entity="match",outcome="accepted"} 5
championship_batch_items_total{entity="match",outcome="rejected"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "championship_batch_items_total")
	assert.NoError(t, err)
}

func TestMetrics_AuditWriteErrors(t *testing.T) {
	m := metrics.New()

	m.AuditWriteErrors().Inc()
	m.AuditWriteErrors().Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuditWriteErrors()))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/api/team/rankings/:groupNumber", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `championship_http_requests_total{method="GET",route="/api/team/rankings/:groupNumber",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "championship_http_request_duration_seconds_bucket")
}
