package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/storage"
)

// userColumns — единый список колонок таблицы users,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const userColumns = `
id, external_id, username, gender, age, height, weight, marital_status,
interests, bio, language, is_active, created_at, updated_at
`

const settingsColumns = `
user_id, gender_preference, min_age, max_age, min_height, max_height,
min_weight, max_weight, marital_preference, updated_at
`

// scanUser сканирует одну строку анкеты в доменную модель
// (SMALLINT -> enum, SMALLINT[] -> []models.Interest).
func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var gender, marital, language int16
	var interests []int16

	if err := row.Scan(
		&user.ID,
		&user.ExternalID,
		&user.Username,
		&gender,
		&user.Age,
		&user.Height,
		&user.Weight,
		&marital,
		&interests,
		&user.Bio,
		&language,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.Gender = models.Gender(gender)
	user.MaritalStatus = models.MaritalStatus(marital)
	user.Interests = interestsFromDB(interests)
	user.Language = models.Language(language)
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()

	return &user, nil
}

func scanSettings(row pgx.Row) (*models.SearchSettings, error) {
	var settings models.SearchSettings
	var pref int16
	var marital []int16

	if err := row.Scan(
		&settings.UserID,
		&pref,
		&settings.Age.Min,
		&settings.Age.Max,
		&settings.Height.Min,
		&settings.Height.Max,
		&settings.Weight.Min,
		&settings.Weight.Max,
		&marital,
		&settings.UpdatedAt,
	); err != nil {
		return nil, err
	}

	settings.GenderPreference = models.GenderPreference(pref)
	settings.MaritalPreference = maritalFromDB(marital)
	settings.UpdatedAt = settings.UpdatedAt.UTC()

	return &settings, nil
}

// collectUsers вычитывает все строки запроса анкет.
func collectUsers(rows pgx.Rows) ([]models.User, error) {
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return users, nil
}

// CreateUser в одной транзакции вставляет анкету и настройки поиска.
// Ошибки: storage.ErrAlreadyExists при конфликте external_id/id.
func (s *Storage) CreateUser(ctx context.Context, user *models.User, settings models.SearchSettings) (*models.User, error) {
	const op = "storage/postgres/users/CreateUser"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
	INSERT INTO users (id, external_id, username, gender, age, height, weight,
		marital_status, interests, bio, language, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING
	` + userColumns

	row := tx.QueryRow(ctx, q,
		user.ID,
		user.ExternalID,
		user.Username,
		int16(user.Gender),
		user.Age,
		user.Height,
		user.Weight,
		int16(user.MaritalStatus),
		interestsToDB(user.Interests),
		user.Bio,
		int16(user.Language),
		user.IsActive,
	)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	settings.UserID = created.ID
	if _, err := tx.Exec(ctx, `
	INSERT INTO search_settings (user_id, gender_preference, min_age, max_age,
		min_height, max_height, min_weight, max_weight, marital_preference)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		settings.UserID,
		int16(settings.GenderPreference),
		settings.Age.Min, settings.Age.Max,
		settings.Height.Min, settings.Height.Max,
		settings.Weight.Min, settings.Weight.Max,
		maritalToDB(settings.MaritalPreference),
	); err != nil {
		return nil, fmt.Errorf("%s: insert settings: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return created, nil
}

// UserByID возвращает анкету по id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage/postgres/users/UserByID"

	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	result, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UserByExternalID возвращает анкету по идентификатору Telegram.
func (s *Storage) UserByExternalID(ctx context.Context, externalID int64) (*models.User, error) {
	const op = "storage/postgres/users/UserByExternalID"

	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE external_id = $1`, externalID)

	result, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UpdateUser выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UpdateUser(ctx context.Context, id uuid.UUID, update storage.ProfileUpdate) (*models.User, error) {
	const op = "storage/postgres/users/UpdateUser"

	sets := []string{"updated_at = now()"}
	args := make([]any, 0, 11)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Username != nil {
		set("username", *update.Username)
	}
	if update.Gender != nil {
		set("gender", int16(*update.Gender))
	}
	if update.Age != nil {
		set("age", *update.Age)
	}
	if update.Height != nil {
		set("height", *update.Height)
	}
	if update.Weight != nil {
		set("weight", *update.Weight)
	}
	if update.MaritalStatus != nil {
		set("marital_status", int16(*update.MaritalStatus))
	}
	if update.Interests != nil {
		set("interests", interestsToDB(*update.Interests))
	}
	if update.Bio != nil {
		set("bio", *update.Bio)
	}
	if update.Language != nil {
		set("language", int16(*update.Language))
	}
	if update.IsActive != nil {
		set("is_active", *update.IsActive)
	}

	args = append(args, id)

	q := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	result, err := scanUser(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SearchSettings возвращает настройки поиска пользователя.
func (s *Storage) SearchSettings(ctx context.Context, userID uuid.UUID) (*models.SearchSettings, error) {
	const op = "storage/postgres/users/SearchSettings"

	row := s.db.QueryRow(ctx, `SELECT `+settingsColumns+` FROM search_settings WHERE user_id = $1`, userID)

	result, err := scanSettings(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SaveSearchSettings перезаписывает настройки целиком (upsert по user_id).
// Ошибки: storage.ErrNotFound, если пользователя нет.
func (s *Storage) SaveSearchSettings(ctx context.Context, settings models.SearchSettings) (*models.SearchSettings, error) {
	const op = "storage/postgres/users/SaveSearchSettings"

	q := `
	INSERT INTO search_settings (user_id, gender_preference, min_age, max_age,
		min_height, max_height, min_weight, max_weight, marital_preference)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (user_id) DO UPDATE SET
		gender_preference = EXCLUDED.gender_preference,
		min_age = EXCLUDED.min_age,
		max_age = EXCLUDED.max_age,
		min_height = EXCLUDED.min_height,
		max_height = EXCLUDED.max_height,
		min_weight = EXCLUDED.min_weight,
		max_weight = EXCLUDED.max_weight,
		marital_preference = EXCLUDED.marital_preference,
		updated_at = now()
	RETURNING
	` + settingsColumns

	row := s.db.QueryRow(ctx, q,
		settings.UserID,
		int16(settings.GenderPreference),
		settings.Age.Min, settings.Age.Max,
		settings.Height.Min, settings.Height.Max,
		settings.Weight.Min, settings.Weight.Max,
		maritalToDB(settings.MaritalPreference),
	)

	result, err := scanSettings(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// FindCandidates строит выборку кандидатов по жёстким фильтрам настроек.
// Сортировка фиксирована: created_at DESC, id DESC.
func (s *Storage) FindCandidates(ctx context.Context, userID uuid.UUID, settings models.SearchSettings) ([]models.User, error) {
	const op = "storage/postgres/users/FindCandidates"

	conds := []string{
		"u.id <> $1",
		"u.is_active",
		"NOT EXISTS (SELECT 1 FROM access_requests r WHERE r.from_user_id = $1 AND r.to_user_id = u.id)",
	}
	args := []any{userID}

	where := func(format string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if g, ok := settings.GenderPreference.Gender(); ok {
		where("u.gender = $%d", int16(g))
	}

	where("u.age >= $%d", settings.Age.Min)
	where("u.age <= $%d", settings.Age.Max)
	where("u.height >= $%d", settings.Height.Min)
	where("u.height <= $%d", settings.Height.Max)
	where("u.weight >= $%d", settings.Weight.Min)
	where("u.weight <= $%d", settings.Weight.Max)

	if len(settings.MaritalPreference) > 0 {
		where("u.marital_status = ANY($%d::smallint[])", maritalToDB(settings.MaritalPreference))
	}

	q := `SELECT ` + userColumns + ` FROM users u WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY u.created_at DESC, u.id DESC`

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// ActiveUsers возвращает всех активных пользователей (для ежедневной сводки).
func (s *Storage) ActiveUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage/postgres/users/ActiveUsers"

	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE is_active ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// Contacts возвращает пользователей, связанных с userID через allowed_contacts
// (с любой стороны пары, без повторов). Новые связи первыми.
func (s *Storage) Contacts(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	const op = "storage/postgres/users/Contacts"

	q := `
	SELECT ` + userColumns + `
	FROM users u
	JOIN (
		SELECT peer_id, max(linked_at) AS linked_at
		FROM (
			SELECT user2_id AS peer_id, created_at AS linked_at FROM allowed_contacts WHERE user1_id = $1
			UNION ALL
			SELECT user1_id AS peer_id, created_at AS linked_at FROM allowed_contacts WHERE user2_id = $1
		) p
		GROUP BY peer_id
	) c ON c.peer_id = u.id
	ORDER BY c.linked_at DESC, u.id DESC
	`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
