package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"truckhub/internal/logx"
)

func serve(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_LimitsPerIP(t *testing.T) {
	t.Parallel()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_rate_limited_total"})
	limiter := NewTokenBucketPerWindow(newFakeClock(), 1, time.Minute, 0, 0)
	m := New(logx.Nop(), counter, limiter)

	var passed int
	h := m.Handler()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		passed++
		w.WriteHeader(http.StatusOK)
	}))

	rec := serve(h, "10.0.0.1:1111")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, "10.0.0.1:2222")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))
	require.JSONEq(t, `{"success":false,"message":"too many requests"}`, rec.Body.String())

	// a different client is unaffected
	rec = serve(h, "10.0.0.2:1111")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, 2, passed)
	require.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestMiddleware_NilLimiterPassesAll(t *testing.T) {
	t.Parallel()

	m := New(logx.Nop(), nil, nil)
	h := m.Handler()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1111").Code)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	require.Equal(t, "192.168.1.5", clientIP(req))

	req.RemoteAddr = "192.168.1.5"
	require.Equal(t, "192.168.1.5", clientIP(req))

	req.RemoteAddr = ""
	require.Equal(t, "unknown", clientIP(req))
}
