// http — служебный HTTP-сервер: пробы живости/готовности и метрики Prometheus.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-dating-bot/internal/transport/http/middleware"
)

// Options — параметры сборки роутера.
type Options struct {
	Logger *slog.Logger
	// Ready сообщает готовность процесса обслуживать апдейты (для /healthz).
	Ready func() bool
	// Gatherer — источник метрик; nil -> prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewRouter собирает http.Handler с /livez, /healthz и /metrics.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
	)

	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if opts.Ready != nil && opts.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
