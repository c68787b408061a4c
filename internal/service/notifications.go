package service

import (
	"context"

	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
)

const (
	kindNewRequest    = "new_request"
	kindAccessGranted = "access_granted"
)

// notify доставляет уведомление о переходе журнала.
// Журнал уже зафиксирован: любые ошибки здесь только логируются.
func (s *Service) notify(ctx context.Context, req models.AccessRequest, kind string) {
	const op = "service/notifications/notify"

	if s.notifier == nil {
		return
	}

	lg := log.From(ctx).With("op", op, "kind", kind, "request_id", req.ID.String())

	from, err := s.storage.UserByID(ctx, req.FromUserID)
	if err != nil {
		lg.Warn("notify_skipped", "reason", "load sender", "err", err)
		return
	}

	to, err := s.storage.UserByID(ctx, req.ToUserID)
	if err != nil {
		lg.Warn("notify_skipped", "reason", "load recipient", "err", err)
		return
	}

	switch kind {
	case kindNewRequest:
		err = s.notifier.NotifyNewRequest(ctx, req, *from, *to)
	case kindAccessGranted:
		err = s.notifier.NotifyAccessGranted(ctx, req, *from, *to)
	}

	if err != nil {
		lg.Warn("notify_failed", "err", err)
		return
	}

	lg.Debug("notify_sent")
}
