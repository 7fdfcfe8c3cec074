package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestObserve(t *testing.T) {
	ObserveHTTP("GET /api/ping", http.MethodGet, http.StatusOK, 3*time.Millisecond)
	ObserveUpstream("document_types", ResultTransport, time.Second)
	ObserveFallback("designs_by_type")

	body := scrape(t)
	assert.Contains(t, body, `dms_http_requests_total{code="200",method="GET",route="GET /api/ping"}`)
	assert.Contains(t, body, `dms_http_latency_seconds_bucket{method="GET",route="GET /api/ping"`)
	assert.Contains(t, body, `dms_formdesign_requests_total{endpoint="document_types",result="transport_error"}`)
	assert.Contains(t, body, `dms_formdesign_latency_seconds_count{endpoint="document_types"}`)
	assert.Contains(t, body, `dms_formdesign_fallbacks_total{endpoint="designs_by_type"}`)
}
