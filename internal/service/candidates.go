package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
)

// FindCandidates возвращает упорядоченный список кандидатов для userID.
//
// Поведение:
//   - settings == nil -> используются сохранённые настройки пользователя;
//   - исключаются сам пользователь, неактивные анкеты и все, кому userID
//     уже отправлял запрос (в любом статусе, в том числе отклонённые);
//   - жёсткие фильтры настроек перепроверяются по ответу хранилища
//     (SearchSettings.Matches);
//   - порядок: сначала недавно зарегистрированные, при равенстве — по id убыванию.
//
// Результат вычисляется заново на каждый вызов; кешированием курсора
// занимается фронтенд (см. internal/session).
func (s *Service) FindCandidates(ctx context.Context, userID uuid.UUID, settings *models.SearchSettings) ([]models.User, error) {
	const op = "service/candidates/FindCandidates"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, invalid("user_id", "empty"))
	}

	if settings == nil {
		stored, err := s.SearchSettings(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		settings = stored
	}

	found, err := s.storage.FindCandidates(ctx, userID, *settings)
	if err != nil {
		lg.Error("storage error on FindCandidates", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	candidates := make([]models.User, 0, len(found))
	for _, u := range found {
		if u.ID == userID || !u.IsActive || !settings.Matches(u) {
			continue
		}
		candidates = append(candidates, u)
	}

	if dropped := len(found) - len(candidates); dropped > 0 {
		lg.Warn("candidates_dropped_by_filter", "count", dropped)
	}
	lg.Debug("candidates_found", "count", len(candidates))

	return candidates, nil
}
