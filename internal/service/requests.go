package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/storage"
)

// CreateRequestResult — итог создания запроса доступа.
// AlreadyExists == true означает no-op: запрос для пары уже есть, Request — nil.
type CreateRequestResult struct {
	Request       *models.AccessRequest
	AlreadyExists bool
}

// RequestAccess — точка входа фронтенда: проверка адресата, дневной квоты и создание запроса.
//
// Ошибки:
//   - ErrNotFound — адресат не существует или деактивирован;
//   - ErrQuotaExceeded — квота на сегодня исчерпана (журнал не затрагивается).
func (s *Service) RequestAccess(ctx context.Context, fromID, toID uuid.UUID) (CreateRequestResult, error) {
	const op = "service/requests/RequestAccess"

	lg := log.From(ctx).With("op", op, "from_user_id", fromID.String(), "to_user_id", toID.String())

	target, err := s.storage.UserByID(ctx, toID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("target not found")

			return CreateRequestResult{}, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)

			return CreateRequestResult{}, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !target.IsActive {
		lg.Warn("target is inactive")

		return CreateRequestResult{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	ok, err := s.CanSendRequest(ctx, fromID)
	if err != nil {
		return CreateRequestResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		lg.Info("daily_quota_exceeded", "limit", s.cfg.Limits.DailyRequests)

		return CreateRequestResult{}, fmt.Errorf("%s: %w", op, ErrQuotaExceeded)
	}

	return s.CreateRequest(ctx, fromID, toID)
}

// CreateRequest вставляет pending-запрос fromID -> toID.
//
// Поведение:
//   - fromID == toID -> ErrInvalidArgument;
//   - повтор для той же упорядоченной пары -> AlreadyExists без ошибки;
//   - квоту не проверяет (это делает RequestAccess/CanSendRequest);
//   - после вставки адресат получает уведомление; сбой доставки только логируется.
func (s *Service) CreateRequest(ctx context.Context, fromID, toID uuid.UUID) (CreateRequestResult, error) {
	const op = "service/requests/CreateRequest"

	lg := log.From(ctx).With("op", op, "from_user_id", fromID.String(), "to_user_id", toID.String())

	if fromID == uuid.Nil || toID == uuid.Nil {
		lg.Warn("invalid argument: empty user id")

		return CreateRequestResult{}, fmt.Errorf("%s: %w", op, invalid("user_id", "empty"))
	}

	if fromID == toID {
		lg.Warn("invalid argument: self request")

		return CreateRequestResult{}, fmt.Errorf("%s: %w", op, invalid("to_user_id", "cannot request yourself"))
	}

	req := &models.AccessRequest{
		ID:         uuid.New(),
		FromUserID: fromID,
		ToUserID:   toID,
		Status:     models.RequestPending,
		CreatedAt:  s.now(),
	}

	created, err := s.storage.CreateRequest(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Info("request_already_exists")

			return CreateRequestResult{AlreadyExists: true}, nil
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return CreateRequestResult{}, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CreateRequest", "err", err)

			return CreateRequestResult{}, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("request_created", "request_id", created.ID.String())

	s.notify(ctx, *created, kindNewRequest)

	return CreateRequestResult{Request: created}, nil
}

// Accept принимает входящий запрос от имени адресата и открывает контакт.
//
// Ошибки:
//   - ErrNotFound — запроса нет;
//   - ErrForbidden — actingUserID не адресат;
//   - ErrInvalidState — запрос уже принят/отклонён (включая проигранную гонку двойного нажатия).
func (s *Service) Accept(ctx context.Context, requestID, actingUserID uuid.UUID) (*models.AccessRequest, error) {
	const op = "service/requests/Accept"

	lg := log.From(ctx).With("op", op, "request_id", requestID.String(), "acting_user_id", actingUserID.String())

	if _, err := s.authorize(ctx, lg, requestID, actingUserID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accepted, contact, err := s.storage.AcceptRequest(ctx, requestID, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapTransitionErr(lg, err))
	}

	if contact != nil {
		lg = lg.With("contact_id", contact.ID.String())
	}
	lg.Info("request_accepted")

	s.notify(ctx, *accepted, kindAccessGranted)

	return accepted, nil
}

// Reject отклоняет входящий запрос; контакт не создаётся, уведомление не отправляется.
// Предусловия и ошибки — как у Accept.
func (s *Service) Reject(ctx context.Context, requestID, actingUserID uuid.UUID) (*models.AccessRequest, error) {
	const op = "service/requests/Reject"

	lg := log.From(ctx).With("op", op, "request_id", requestID.String(), "acting_user_id", actingUserID.String())

	if _, err := s.authorize(ctx, lg, requestID, actingUserID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rejected, err := s.storage.RejectRequest(ctx, requestID, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapTransitionErr(lg, err))
	}

	lg.Info("request_rejected")

	return rejected, nil
}

// PendingInbox возвращает входящие pending-запросы userID, старые первыми.
func (s *Service) PendingInbox(ctx context.Context, userID uuid.UUID) ([]models.AccessRequest, error) {
	const op = "service/requests/PendingInbox"

	inbox, err := s.storage.PendingInbox(ctx, userID)
	if err != nil {
		log.From(ctx).Error("storage error on PendingInbox", "op", op, "user_id", userID.String(), "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return inbox, nil
}

// authorize проверяет существование запроса, права адресата и статус pending.
func (s *Service) authorize(ctx context.Context, lg *slog.Logger, requestID, actingUserID uuid.UUID) (*models.AccessRequest, error) {
	req, err := s.storage.RequestByID(ctx, requestID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("request not found")

			return nil, ErrNotFound
		default:
			lg.Error("storage error on RequestByID", "err", err)

			return nil, ErrInternal
		}
	}

	if req.ToUserID != actingUserID {
		lg.Warn("forbidden: acting user is not the recipient", "to_user_id", req.ToUserID.String())

		return nil, ErrForbidden
	}

	if !req.Status.CanTransition(models.RequestAccepted) {
		lg.Info("request_already_handled", "status", req.Status.String())

		return nil, ErrInvalidState
	}

	return req, nil
}

func (s *Service) mapTransitionErr(lg *slog.Logger, err error) error {
	switch {
	case errors.Is(err, storage.ErrConflict):
		lg.Warn("request resolved concurrently")

		return ErrInvalidState
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("request not found")

		return ErrNotFound
	default:
		lg.Error("storage error on transition", "err", err)

		return ErrInternal
	}
}
