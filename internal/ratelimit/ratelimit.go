// ratelimit — антиспам-ограничитель действий пользователя (скользящее окно).
//
// Лимиты задаются на пару (пользователь Telegram, действие). Действие без правила
// разрешено всегда. Ограничитель стоит перед дневной квотой запросов и не заменяет её.
//
// Реализации:
//   - Memory — in-process, для одиночного инстанса;
//   - Redis — sorted set на ключ, переживает рестарт процесса.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-dating-bot/internal/config"
)

// Action — тип ограничиваемого действия.
type Action string

const (
	ActionMessage      Action = "message"
	ActionSearch       Action = "search"
	ActionRequest      Action = "request"
	ActionProfileEdit  Action = "profile_edit"
	ActionSettingsEdit Action = "settings_edit"
)

// Rule — не более Limit действий за Window.
type Rule struct {
	Limit  int
	Window time.Duration
}

// DefaultRules — лимиты по умолчанию.
func DefaultRules() map[Action]Rule {
	return map[Action]Rule{
		ActionMessage:      {Limit: 10, Window: time.Minute},
		ActionSearch:       {Limit: 5, Window: time.Minute},
		ActionRequest:      {Limit: 3, Window: 5 * time.Minute},
		ActionProfileEdit:  {Limit: 10, Window: 5 * time.Minute},
		ActionSettingsEdit: {Limit: 10, Window: 5 * time.Minute},
	}
}

// Limiter — контракт ограничителя.
type Limiter interface {
	// Allow фиксирует попытку действия и сообщает, укладывается ли она в лимит.
	// Отклонённая попытка в окне не учитывается.
	Allow(ctx context.Context, userID int64, action Action) (bool, error)
	// Close освобождает ресурсы бэкенда.
	Close() error
}

// New создаёт ограничитель по конфигурации.
func New(ctx context.Context, cfg config.RateLimitConfig) (Limiter, error) {
	const op = "ratelimit/New"

	switch cfg.Backend {
	case config.RateLimitMemory, "":
		return NewMemory(DefaultRules()), nil
	case config.RateLimitRedis:
		l, err := NewRedisFromURL(ctx, cfg.RedisURL, cfg.Prefix, DefaultRules())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%s: unknown backend %q", op, cfg.Backend)
	}
}

func key(userID int64, action Action) string {
	return fmt.Sprintf("%d:%s", userID, action)
}
