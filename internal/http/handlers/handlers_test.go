package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"truckhub/internal/http/handlers"
	"truckhub/internal/logx"
)

func TestPing(t *testing.T) {
	t.Parallel()

	h := handlers.New(logx.Nop())
	rec := httptest.NewRecorder()
	h.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestHealthcheckHead(t *testing.T) {
	t.Parallel()

	h := handlers.New(logx.Nop())
	rec := httptest.NewRecorder()
	h.HealthcheckHead(rec, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	h := handlers.New(logx.Nop())
	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"route not found"}`, rec.Body.String())
}
