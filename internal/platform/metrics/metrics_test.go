package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve_CountsByRoutePattern(t *testing.T) {
	m := NewHTTP()

	m.Observe(http.MethodGet, "/user/{user_id}", http.StatusOK, 5*time.Millisecond)
	m.Observe(http.MethodGet, "/user/{user_id}", http.StatusOK, 7*time.Millisecond)
	m.Observe(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	m.RateLimited()

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/user/{user_id}", "200")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched bucket, got %v", got)
	}
	if got := testutil.ToFloat64(m.limited); got != 1 {
		t.Fatalf("expected 1 rate limited, got %v", got)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := NewHTTP()
	m.Observe(http.MethodPost, "/user", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK || !strings.Contains(string(body), "petshop_http_requests_total") {
		t.Fatalf("unexpected metrics output: %d %s", rec.Code, body)
	}
}
