package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-dating-bot/internal/metrics"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return rr.Code, string(body)
}

func TestRouter_Probes(t *testing.T) {
	t.Parallel()

	var ready atomic.Bool
	h := NewRouter(Options{Ready: ready.Load, Gatherer: prometheus.NewRegistry()})

	code, body := get(t, h, "/livez")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body)

	code, _ = get(t, h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, code)

	ready.Store(true)
	code, _ = get(t, h, "/healthz")
	require.Equal(t, http.StatusOK, code)

	code, _ = get(t, h, "/nope")
	require.Equal(t, http.StatusNotFound, code)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveNotification("access_granted", nil)

	code, body := get(t, NewRouter(Options{Gatherer: reg}), "/metrics")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, `datingbot_notifications_total{kind="access_granted",result="ok"} 1`)
}
