package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
)

// StartDailySummary запускает периодическую рассылку дневной сводки
// с интервалом s.cfg.Summary.Interval. Первый проход — через один интервал.
// Останавливается по ctx.
func (s *Service) StartDailySummary(ctx context.Context) error {
	const op = "service/summary/StartDailySummary"

	if s.notifier == nil {
		return fmt.Errorf("%s: notifier is not configured", op)
	}

	interval := s.cfg.Summary.Interval
	if interval <= 0 {
		return fmt.Errorf("%s: interval must be positive", op)
	}

	lg := log.From(ctx)
	lg.Info("summary_start", slog.String("op", op), slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lg.Info("summary_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if err := s.SendDailySummaries(ctx); err != nil {
				lg.Warn("summary_tick_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

// SendDailySummaries — один проход: всем активным пользователям с ненулевой
// активностью за сегодня отправляется сводка (входящие pending/accepted, отправленные).
func (s *Service) SendDailySummaries(ctx context.Context) error {
	const op = "service/summary/SendDailySummaries"

	lg := log.From(ctx)

	users, err := s.storage.ActiveUsers(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	since := s.dayStart(s.now())

	var sent, skipped, failed int
	for _, u := range users {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}

		stats, err := s.storage.DailyStats(ctx, u.ID, since)
		if err != nil {
			failed++
			lg.Warn("summary_stats_error",
				slog.String("op", op),
				slog.String("user_id", u.ID.String()),
				slog.String("err", err.Error()),
			)
			continue
		}

		if stats.Empty() {
			skipped++
			continue
		}

		if err := s.notifier.SendDailySummary(ctx, u, stats); err != nil {
			failed++
			lg.Warn("summary_send_error",
				slog.String("op", op),
				slog.String("user_id", u.ID.String()),
				slog.String("err", err.Error()),
			)
			continue
		}
		sent++
	}

	lg.Info("summary_done",
		slog.String("op", op),
		slog.Int("sent", sent),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
	)

	return nil
}
