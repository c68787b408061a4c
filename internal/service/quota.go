package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
)

// dayStart возвращает начало текущих суток в часовом поясе квоты.
func (s *Service) dayStart(now time.Time) time.Time {
	t := now.In(s.loc)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// sentToday считает исходящие запросы userID за текущие сутки.
func (s *Service) sentToday(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.storage.CountSentSince(ctx, userID, s.dayStart(s.now()))
}

// CanSendRequest сообщает, укладывается ли следующий запрос userID в дневную квоту.
// Проверка не атомарна относительно вставки: параллельные запросы одного пользователя
// могут превысить квоту на величину гонки.
func (s *Service) CanSendRequest(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "service/quota/CanSendRequest"

	sent, err := s.sentToday(ctx, userID)
	if err != nil {
		log.From(ctx).Error("storage error on CountSentSince", "op", op, "user_id", userID.String(), "err", err)

		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return sent < s.cfg.Limits.DailyRequests, nil
}

// RemainingRequests возвращает остаток дневной квоты (не меньше нуля).
func (s *Service) RemainingRequests(ctx context.Context, userID uuid.UUID) (int, error) {
	const op = "service/quota/RemainingRequests"

	sent, err := s.sentToday(ctx, userID)
	if err != nil {
		log.From(ctx).Error("storage error on CountSentSince", "op", op, "user_id", userID.String(), "err", err)

		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return max(s.cfg.Limits.DailyRequests-sent, 0), nil
}
