package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/go-dating-bot/internal/config"
	"github.com/pribylovaa/go-dating-bot/internal/metrics"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	applog "github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/redact"
	"github.com/pribylovaa/go-dating-bot/internal/ratelimit"
	"github.com/pribylovaa/go-dating-bot/internal/service"
	"github.com/pribylovaa/go-dating-bot/internal/storage/postgres"
	httpserver "github.com/pribylovaa/go-dating-bot/internal/transport/http"
	"github.com/pribylovaa/go-dating-bot/internal/transport/telegram"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	// .env нужен только для локального запуска; его отсутствие не ошибка.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting dating-bot", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = applog.Into(rootCtx, log)

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("service_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}

	log.Info("service_stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	var ready atomic.Bool

	log.Info("postgres_connecting", slog.String("url", redact.URL(cfg.Postgres.URL)))
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.Postgres.URL)
	dbCancel()
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("postgres_connected")

	limiter, err := ratelimit.New(ctx, cfg.RateLimit)
	if err != nil {
		return err
	}
	defer limiter.Close()
	log.Info("rate_limiter_ready",
		slog.String("backend", cfg.RateLimit.Backend),
		slog.String("redis", redact.URL(cfg.RateLimit.RedisURL)),
	)

	if err := tgbotapi.SetLogger(slog.NewLogLogger(log.Handler(), slog.LevelDebug)); err != nil {
		return err
	}
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return errors.New(redact.Secret(err.Error(), cfg.Telegram.Token))
	}
	api.Debug = cfg.Telegram.Debug
	log.Info("telegram_authorized",
		slog.String("bot", api.Self.UserName),
		slog.String("token", redact.Token(cfg.Telegram.Token)),
	)

	m := metrics.New(prometheus.DefaultRegisterer)

	sender := telegram.NewSender(api, cfg.Telegram.Token)
	dispatcher := notify.New(sender, m, cfg.Timeouts.Notify)
	svc := service.New(store, dispatcher, cfg)
	log.Info("service_initialized")

	bot := telegram.New(api, sender, svc, limiter, m, telegram.Options{
		PollTimeout:   cfg.Telegram.PollTimeout,
		UpdateTimeout: cfg.Timeouts.Update,
		DailyLimit:    cfg.Limits.DailyRequests,
	})

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr: httpAddr,
		Handler: httpserver.NewRouter(httpserver.Options{
			Logger: log,
			Ready:  ready.Load,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return err
	}
	log.Info("http_listen_start", slog.String("addr", httpAddr))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return bot.Run(gctx)
	})

	if cfg.Summary.Enabled {
		g.Go(func() error {
			return svc.StartDailySummary(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		ready.Store(false)
		log.Info("shutdown_requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
		} else {
			log.Info("http_stopped")
		}
		return nil
	})

	ready.Store(true)
	log.Info("bot_ready")

	return g.Wait()
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
