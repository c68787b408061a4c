package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/storage"
)

const requestColumns = `
id, from_user_id, to_user_id, status, created_at, resolved_at
`

const contactColumns = `
id, request_id, user1_id, user2_id, created_at
`

// querier — общий знаменатель *pgxpool.Pool и pgx.Tx для вспомогательных запросов.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanRequest(row pgx.Row) (*models.AccessRequest, error) {
	var req models.AccessRequest
	var status int16

	if err := row.Scan(
		&req.ID,
		&req.FromUserID,
		&req.ToUserID,
		&status,
		&req.CreatedAt,
		&req.ResolvedAt,
	); err != nil {
		return nil, err
	}

	req.Status = models.RequestStatus(status)
	req.CreatedAt = req.CreatedAt.UTC()
	if req.ResolvedAt != nil {
		at := req.ResolvedAt.UTC()
		req.ResolvedAt = &at
	}

	return &req, nil
}

func scanContact(row pgx.Row) (*models.AllowedContact, error) {
	var c models.AllowedContact

	if err := row.Scan(&c.ID, &c.RequestID, &c.User1ID, &c.User2ID, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()

	return &c, nil
}

// CreateRequest вставляет pending-запрос; повтор пары (from, to) не вставляется.
// Ошибки: storage.ErrAlreadyExists при повторе пары,
// storage.ErrNotFound, если одного из пользователей нет.
func (s *Storage) CreateRequest(ctx context.Context, req *models.AccessRequest) (*models.AccessRequest, error) {
	const op = "storage/postgres/requests/CreateRequest"

	q := `
	INSERT INTO access_requests (id, from_user_id, to_user_id, status, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (from_user_id, to_user_id) DO NOTHING
	RETURNING
	` + requestColumns

	row := s.db.QueryRow(ctx, q,
		req.ID,
		req.FromUserID,
		req.ToUserID,
		int16(models.RequestPending),
		req.CreatedAt.UTC(),
	)

	result, err := scanRequest(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows), isUniqueViolation(err):
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		case isForeignKeyViolation(err):
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return result, nil
}

// RequestByID возвращает запрос по id.
func (s *Storage) RequestByID(ctx context.Context, id uuid.UUID) (*models.AccessRequest, error) {
	const op = "storage/postgres/requests/RequestByID"

	result, err := scanRequest(s.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM access_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// CountSentSince считает исходящие запросы userID с created_at >= since.
func (s *Storage) CountSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	const op = "storage/postgres/requests/CountSentSince"

	var count int
	err := s.db.QueryRow(ctx, `
	SELECT count(*) FROM access_requests
	WHERE from_user_id = $1 AND created_at >= $2
	`, userID, since.UTC()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// PendingInbox возвращает входящие pending-запросы: created_at ASC, id ASC.
func (s *Storage) PendingInbox(ctx context.Context, userID uuid.UUID) ([]models.AccessRequest, error) {
	const op = "storage/postgres/requests/PendingInbox"

	rows, err := s.db.Query(ctx, `
	SELECT `+requestColumns+` FROM access_requests
	WHERE to_user_id = $1 AND status = $2
	ORDER BY created_at ASC, id ASC
	`, userID, int16(models.RequestPending))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.AccessRequest
	for rows.Next() {
		req, scanErr := scanRequest(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}
		result = append(result, *req)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return result, nil
}

// resolve выполняет условный переход pending -> status.
// Если ни одна строка не изменилась — различает отсутствие записи и чужое состояние.
func resolve(ctx context.Context, q querier, id uuid.UUID, status models.RequestStatus, at time.Time) (*models.AccessRequest, error) {
	row := q.QueryRow(ctx, `
	UPDATE access_requests SET status = $2, resolved_at = $3
	WHERE id = $1 AND status = $4
	RETURNING
	`+requestColumns, id, int16(status), at.UTC(), int16(models.RequestPending))

	result, err := scanRequest(row)
	if err == nil {
		return result, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM access_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, err
	}

	if !exists {
		return nil, storage.ErrNotFound
	}

	return nil, storage.ErrConflict
}

// AcceptRequest в одной транзакции переводит запрос в accepted и создаёт allowed_contacts.
// Если вставка контакта падает — статус откатывается вместе с транзакцией.
// Ошибки: storage.ErrNotFound, storage.ErrConflict (запрос уже не pending).
func (s *Storage) AcceptRequest(ctx context.Context, id uuid.UUID, at time.Time) (*models.AccessRequest, *models.AllowedContact, error) {
	const op = "storage/postgres/requests/AcceptRequest"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := resolve(ctx, tx, id, models.RequestAccepted, at)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	row := tx.QueryRow(ctx, `
	INSERT INTO allowed_contacts (id, request_id, user1_id, user2_id, created_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING
	`+contactColumns, uuid.New(), req.ID, req.FromUserID, req.ToUserID, at.UTC())

	contact, err := scanContact(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, nil, fmt.Errorf("%s: insert contact: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return req, contact, nil
}

// RejectRequest переводит запрос в rejected.
// Ошибки: storage.ErrNotFound, storage.ErrConflict (запрос уже не pending).
func (s *Storage) RejectRequest(ctx context.Context, id uuid.UUID, at time.Time) (*models.AccessRequest, error) {
	const op = "storage/postgres/requests/RejectRequest"

	req, err := resolve(ctx, s.db, id, models.RequestRejected, at)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return req, nil
}

// DailyStats собирает счётчики активности пользователя с момента since.
func (s *Storage) DailyStats(ctx context.Context, userID uuid.UUID, since time.Time) (models.DailyStats, error) {
	const op = "storage/postgres/requests/DailyStats"

	var stats models.DailyStats
	err := s.db.QueryRow(ctx, `
	SELECT
		count(*) FILTER (WHERE to_user_id = $1 AND status = $3),
		count(*) FILTER (WHERE to_user_id = $1 AND status = $4),
		count(*) FILTER (WHERE from_user_id = $1)
	FROM access_requests
	WHERE (from_user_id = $1 OR to_user_id = $1) AND created_at >= $2
	`, userID, since.UTC(), int16(models.RequestPending), int16(models.RequestAccepted)).Scan(
		&stats.IncomingPending,
		&stats.IncomingAccepted,
		&stats.Sent,
	)
	if err != nil {
		return models.DailyStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
