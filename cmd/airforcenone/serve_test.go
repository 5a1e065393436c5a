package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/pkg/classify"
)

func newTestServer() *reportServer {
	return newReportServer(zap.NewNop().Sugar(), []string{"*"})
}

func doRequest(t *testing.T, s *reportServer, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

// TestServeBeforeFirstPoll tests that data routes wait for a report.
func TestServeBeforeFirstPoll(t *testing.T) {
	s := newTestServer()

	rec, body := doRequest(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["ready"])

	for _, path := range []string{"/api/v1/aircraft", "/api/v1/aircraft/ae001f", "/api/v1/summary"} {
		rec, _ := doRequest(t, s, path)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

// TestServeAircraft tests the list route and the tier filter.
func TestServeAircraft(t *testing.T) {
	s := newTestServer()
	s.setReport(testReport())

	rec, body := doRequest(t, s, "/api/v1/aircraft")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.EqualValues(t, 2, body["count"])

	_, body = doRequest(t, s, "/api/v1/aircraft?tier=PRIORITY")
	assert.EqualValues(t, 1, body["count"])
	list := body["aircraft"].([]interface{})
	assert.Equal(t, "ae001f", list[0].(map[string]interface{})["icao"])

	_, body = doRequest(t, s, "/api/v1/aircraft?tier=top")
	assert.EqualValues(t, 0, body["count"])
}

// TestServeAircraftByICAO tests the single aircraft route.
func TestServeAircraftByICAO(t *testing.T) {
	s := newTestServer()
	s.setReport(testReport())

	rec, body := doRequest(t, s, "/api/v1/aircraft/AE001F")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Air Force One", body["description"])
	assert.Equal(t, "Germany", body["over_country"])

	rec, body = doRequest(t, s, "/api/v1/aircraft/000000")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "not currently detected")
}

// TestServeSummaryAndHealth tests the summary route and degraded health.
func TestServeSummaryAndHealth(t *testing.T) {
	s := newTestServer()
	r := testReport()
	r.Error = "HTTP 503"
	s.setReport(r)

	rec, body := doRequest(t, s, "/api/v1/summary")
	assert.Equal(t, http.StatusOK, rec.Code)
	summary := body["summary"].(map[string]interface{})
	assert.EqualValues(t, 40, summary["scanned"])
	assert.EqualValues(t, 2, summary["matched"])
	assert.Equal(t, "country", summary["policy"])

	_, body = doRequest(t, s, "/health")
	assert.Equal(t, true, body["ready"])
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "HTTP 503", body["error"])
}

// TestPoll tests that poll runs immediately and stops with its context.
func TestPoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan struct{})

	go func() {
		poll(ctx, 5*time.Millisecond, func(context.Context) {
			if calls.Add(1) == 3 {
				cancel()
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poll did not stop after cancel")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

// TestServeLatestReportIsCopied tests that readers see a consistent snapshot.
func TestServeLatestReportIsCopied(t *testing.T) {
	s := newTestServer()

	r := classify.Report{Selector: "mil"}
	s.setReport(r)
	r.Selector = "changed"

	got, ok := s.latest()
	require.True(t, ok)
	assert.Equal(t, "mil", got.Selector)
}

// TestServeCORS tests that allowed origins are echoed.
func TestServeCORS(t *testing.T) {
	s := newReportServer(zap.NewNop().Sugar(), []string{"https://dash.example"})
	s.setReport(testReport())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	req.Header.Set("Origin", "https://dash.example")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, "https://dash.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
