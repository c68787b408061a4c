package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.ObserveNotification("new_request", nil)
	m.ObserveNotification("new_request", errors.New("blocked"))
	m.ObserveNotification("new_request", nil)
	m.ObserveRequest("created")
	m.ObserveRateLimited("search")
	m.ObserveUpdate("message", nil, 10*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues("new_request", ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("new_request", ResultError)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("created")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.rateLimited.WithLabelValues("search")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.updates.WithLabelValues("message", ResultOK)))
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveNotification("x", nil)
		m.ObserveRequest("x")
		m.ObserveRateLimited("x")
		m.ObserveUpdate("x", nil, time.Second)
	})
}

// Повторная регистрация в одном реестре запрещена — у каждого процесса один набор.
func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = New(reg)
	require.Panics(t, func() { _ = New(reg) })
}
