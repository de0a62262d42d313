package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.ObserveRequest(http.MethodGet, "/api/leads", http.StatusOK, 25*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/leads", http.StatusOK, 10*time.Millisecond)

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/leads", "200"))
	if got != 2 {
		t.Fatalf("expected 2 observed requests, got %v", got)
	}
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/leads", "404"))
	if got != 1 {
		t.Fatalf("expected 1 observed request, got %v", got)
	}
}

func TestHTTPMetricsNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
}
