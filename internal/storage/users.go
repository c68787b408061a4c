package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/models"
)

// ProfileUpdate — частичный апдейт анкеты.
// Обновляются только поля с непустыми указателями; updated_at сдвигается всегда.
type ProfileUpdate struct {
	Username      *string
	Gender        *models.Gender
	Age           *int
	Height        *int
	Weight        *int
	MaritalStatus *models.MaritalStatus
	Interests     *[]models.Interest
	Bio           *string
	Language      *models.Language
	IsActive      *bool
}

// Empty сообщает, что апдейт не затрагивает ни одного поля.
func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.Gender == nil && u.Age == nil && u.Height == nil &&
		u.Weight == nil && u.MaritalStatus == nil && u.Interests == nil && u.Bio == nil &&
		u.Language == nil && u.IsActive == nil
}

// Users — контракт репозитория анкет и настроек поиска.
type Users interface {
	// CreateUser атомарно создаёт анкету и её настройки поиска.
	// Ошибки: ErrAlreadyExists при повторе external_id.
	CreateUser(ctx context.Context, user *models.User, settings models.SearchSettings) (*models.User, error)
	// UserByID возвращает анкету по внутреннему идентификатору.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserByExternalID возвращает анкету по идентификатору Telegram.
	UserByExternalID(ctx context.Context, externalID int64) (*models.User, error)
	// UpdateUser выполняет частичное обновление полей, указанных в update.
	UpdateUser(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*models.User, error)
	// SearchSettings возвращает настройки поиска пользователя.
	SearchSettings(ctx context.Context, userID uuid.UUID) (*models.SearchSettings, error)
	// SaveSearchSettings перезаписывает настройки поиска целиком.
	SaveSearchSettings(ctx context.Context, settings models.SearchSettings) (*models.SearchSettings, error)
	// FindCandidates возвращает активных пользователей, подходящих под settings,
	// кроме самого userID и тех, кому userID уже отправлял запрос (в любом статусе).
	// Порядок: created_at DESC, id DESC.
	FindCandidates(ctx context.Context, userID uuid.UUID, settings models.SearchSettings) ([]models.User, error)
	// ActiveUsers возвращает всех активных пользователей.
	ActiveUsers(ctx context.Context) ([]models.User, error)
	// Contacts возвращает пользователей, связанных с userID через allowed_contacts.
	Contacts(ctx context.Context, userID uuid.UUID) ([]models.User, error)
}

// Requests — контракт журнала запросов доступа.
type Requests interface {
	// CreateRequest вставляет запрос в статусе pending.
	// Ошибки: ErrAlreadyExists, если запрос для пары (from, to) уже есть.
	CreateRequest(ctx context.Context, req *models.AccessRequest) (*models.AccessRequest, error)
	// RequestByID возвращает запрос по идентификатору.
	RequestByID(ctx context.Context, id uuid.UUID) (*models.AccessRequest, error)
	// CountSentSince считает запросы, отправленные userID начиная с since.
	CountSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	// PendingInbox возвращает входящие pending-запросы, старые первыми.
	PendingInbox(ctx context.Context, userID uuid.UUID) ([]models.AccessRequest, error)
	// AcceptRequest в одной транзакции переводит запрос pending -> accepted
	// и создаёт AllowedContact. Ошибки: ErrNotFound, ErrConflict (уже не pending).
	AcceptRequest(ctx context.Context, id uuid.UUID, at time.Time) (*models.AccessRequest, *models.AllowedContact, error)
	// RejectRequest переводит запрос pending -> rejected.
	// Ошибки: ErrNotFound, ErrConflict (уже не pending).
	RejectRequest(ctx context.Context, id uuid.UUID, at time.Time) (*models.AccessRequest, error)
	// DailyStats собирает активность пользователя начиная с since.
	DailyStats(ctx context.Context, userID uuid.UUID, since time.Time) (models.DailyStats, error)
}
