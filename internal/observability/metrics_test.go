package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.ObserveHTTPRequest("get", "GET /api/users/{$}", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest("GET", "GET /api/users/{$}", http.StatusOK, 5*time.Millisecond)
	m.ObserveHTTPRequest("GET", "unmatched", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/users/{$}", "200")); got != 2 {
		t.Fatalf("expected 2 user list requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}

func TestMetrics_ObserveLeaderboardRecompute(t *testing.T) {
	m := NewMetrics()

	m.ObserveLeaderboardRecompute(7, 10*time.Millisecond, nil)
	m.ObserveLeaderboardRecompute(0, time.Millisecond, errors.New("store down"))

	if got := testutil.ToFloat64(m.recomputeRuns.WithLabelValues("success")); got != 1 {
		t.Fatalf("expected 1 successful recompute, got %v", got)
	}
	if got := testutil.ToFloat64(m.recomputeRuns.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected 1 failed recompute, got %v", got)
	}
	if got := testutil.ToFloat64(m.leaderboardSize); got != 7 {
		t.Fatalf("failed recompute must not reset gauge, got %v", got)
	}
}

func TestMetrics_ObserveSeed(t *testing.T) {
	m := NewMetrics()

	m.ObserveSeed(42, time.Second, nil)
	m.ObserveSeed(10, time.Second, errors.New("boom"))

	if got := testutil.ToFloat64(m.seedActivities); got != 42 {
		t.Fatalf("expected 42 seeded activities, got %v", got)
	}
	if got := testutil.ToFloat64(m.seedRuns.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected 1 failed seed run, got %v", got)
	}
}

func TestMetrics_HandlerServesRegistry(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTPRequest("GET", "GET /healthz", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "octofit_http_requests_total") {
		t.Fatalf("expected http request counter in output")
	}
}

func TestNewMetrics_InstancesAreIndependent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.ObserveSeed(3, time.Second, nil)

	if got := testutil.ToFloat64(b.seedActivities); got != 0 {
		t.Fatalf("expected independent registries, got %v", got)
	}
}
