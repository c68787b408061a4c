// postgres предоставляет реализацию storage.Storage на базе PostgreSQL (pgx/v5).
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создает и инициализирует пул соединений к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Ping проверяет доступность БД (используется readiness-пробой).
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// pgCode возвращает SQLSTATE ошибки PostgreSQL или пустую строку.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgerrcode.ForeignKeyViolation
}

// Конвертация enum-множеств в SMALLINT[] и обратно.

func interestsToDB(in []models.Interest) []int16 {
	out := make([]int16, 0, len(in))
	for _, v := range in {
		out = append(out, int16(v))
	}
	return out
}

func interestsFromDB(in []int16) []models.Interest {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Interest, 0, len(in))
	for _, v := range in {
		out = append(out, models.Interest(v))
	}
	return out
}

func maritalToDB(in []models.MaritalStatus) []int16 {
	out := make([]int16, 0, len(in))
	for _, v := range in {
		out = append(out, int16(v))
	}
	return out
}

func maritalFromDB(in []int16) []models.MaritalStatus {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.MaritalStatus, 0, len(in))
	for _, v := range in {
		out = append(out, models.MaritalStatus(v))
	}
	return out
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)
