// service содержит бизнес-логику бота знакомств:
// - операции над анкетой и настройками поиска (регистрация, частичный апдейт, (де)активация);
// - подбор кандидатов (Eligibility Filter);
// - дневная квота исходящих запросов (Quota Tracker);
// - журнал запросов доступа и разрешённые контакты (Request Ledger);
// - периодическая дневная сводка.
//
// Сервис не знает о транспорте: уведомления уходят через интерфейс Notifier,
// ошибки доставки логируются и не влияют на состояние журнала.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-dating-bot/internal/config"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные (границы, enum, правила bio).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — пользователь или запрос не найден.
	ErrNotFound = errors.New("not found")
	// ErrNotRegistered — текущий пользователь ещё не прошёл регистрацию.
	ErrNotRegistered = fmt.Errorf("%w: user is not registered", ErrNotFound)
	// ErrAlreadyExists — анкета с таким external_id уже существует.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden — действующий пользователь не адресат запроса.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidState — запрос уже обработан (не pending).
	ErrInvalidState = errors.New("invalid state")
	// ErrQuotaExceeded — исчерпана дневная квота запросов.
	ErrQuotaExceeded = errors.New("daily quota exceeded")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// ValidationError описывает, какое поле не прошло проверку.
// errors.Is(err, ErrInvalidArgument) для неё истинно.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Notifier — исходящие уведомления, порождаемые переходами журнала.
// Реализация обязана быть безопасной при ошибке доставки: сервис лишь логирует её.
type Notifier interface {
	// NotifyNewRequest сообщает адресату (to) о новом запросе от from.
	NotifyNewRequest(ctx context.Context, req models.AccessRequest, from, to models.User) error
	// NotifyAccessGranted сообщает автору запроса (from), что to открыл контакт.
	NotifyAccessGranted(ctx context.Context, req models.AccessRequest, from, to models.User) error
	// SendDailySummary отправляет пользователю сводку активности за день.
	SendDailySummary(ctx context.Context, user models.User, stats models.DailyStats) error
}

// Service — бизнес-логика бота знакомств.
type Service struct {
	storage  storage.Storage
	notifier Notifier
	cfg      *config.Config
	bounds   models.Bounds
	loc      *time.Location
	now      func() time.Time
}

// New создаёт новый экземпляр Service. notifier может быть nil (уведомления отключены).
func New(st storage.Storage, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		storage:  st,
		notifier: notifier,
		cfg:      cfg,
		bounds:   cfg.Bounds.Model(),
		loc:      cfg.Limits.Location(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Bounds возвращает глобальные границы атрибутов (для подсказок во фронтенде).
func (s *Service) Bounds() models.Bounds {
	return s.bounds
}
