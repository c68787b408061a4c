// metrics — Prometheus-коллекторы бота знакомств.
//
// Все методы безопасны для nil-получателя: компоненты, собранные без метрик
// (например, в тестах), просто ничего не считают.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "datingbot"

// Результаты для лейбла result.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics — набор коллекторов процесса.
type Metrics struct {
	updates        *prometheus.CounterVec
	updateDuration *prometheus.HistogramVec
	notifications  *prometheus.CounterVec
	requests       *prometheus.CounterVec
	rateLimited    *prometheus.CounterVec
}

// New регистрирует коллекторы в reg (обычно prometheus.DefaultRegisterer).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		updates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Telegram updates processed, by kind and result.",
		}, []string{"kind", "result"}),
		updateDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_duration_seconds",
			Help:      "Time spent handling one Telegram update.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Outbound notifications, by kind and delivery result.",
		}, []string{"kind", "result"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_requests_total",
			Help:      "Access request ledger outcomes.",
		}, []string{"outcome"}),
		rateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "User actions rejected by the anti-spam limiter.",
		}, []string{"action"}),
	}
}

// ObserveUpdate учитывает обработанный апдейт.
func (m *Metrics) ObserveUpdate(kind string, err error, took time.Duration) {
	if m == nil {
		return
	}

	m.updates.WithLabelValues(kind, result(err)).Inc()
	m.updateDuration.WithLabelValues(kind).Observe(took.Seconds())
}

// ObserveNotification учитывает попытку доставки уведомления.
func (m *Metrics) ObserveNotification(kind string, err error) {
	if m == nil {
		return
	}

	m.notifications.WithLabelValues(kind, result(err)).Inc()
}

// ObserveRequest учитывает исход операции журнала запросов
// (created, duplicate, quota_exceeded, accepted, rejected, already_handled).
func (m *Metrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(outcome).Inc()
}

// ObserveRateLimited учитывает отказ антиспам-лимитера.
func (m *Metrics) ObserveRateLimited(action string) {
	if m == nil {
		return
	}

	m.rateLimited.WithLabelValues(action).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}

	return ResultOK
}
