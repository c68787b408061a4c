package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/storage"
)

// RegisterInput — данные завершённого диалога регистрации.
type RegisterInput struct {
	ExternalID    int64
	Username      string
	Gender        models.Gender
	Age           int
	Height        int
	Weight        int
	MaritalStatus models.MaritalStatus
	Interests     []models.Interest
	Bio           string
	Language      models.Language
}

// ProfileUpdate — частичный апдейт анкеты: меняются только поля с непустыми указателями.
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
}

// SettingsUpdate — частичный апдейт настроек поиска.
// Проверка min <= max и глобальных границ выполняется по итоговым значениям.
type SettingsUpdate struct {
	GenderPreference  *models.GenderPreference
	Age               *models.Range
	Height            *models.Range
	Weight            *models.Range
	MaritalPreference *[]models.MaritalStatus
}

// Register создаёт анкету и настройки поиска по умолчанию (все полы, полные границы).
//
// Валидация:
//   - external_id > 0;
//   - пол и семейное положение из закрытых наборов;
//   - возраст/рост/вес внутри глобальных границ;
//   - интересы из каталога (повторы схлопываются);
//   - bio: до 500 символов, без ссылок, @упоминаний, #тегов и HTML.
//
// Повторная регистрация того же external_id -> ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	const op = "service/profiles/Register"

	lg := log.From(ctx).With("op", op, "external_id", input.ExternalID)

	if input.ExternalID <= 0 {
		lg.Warn("invalid argument: empty external_id")

		return nil, fmt.Errorf("%s: %w", op, invalid("external_id", "must be positive"))
	}

	if input.Language == 0 {
		input.Language = models.LanguageRU
	}

	user := &models.User{
		ID:            uuid.New(),
		ExternalID:    input.ExternalID,
		Username:      strings.TrimPrefix(strings.TrimSpace(input.Username), "@"),
		Gender:        input.Gender,
		Age:           input.Age,
		Height:        input.Height,
		Weight:        input.Weight,
		MaritalStatus: input.MaritalStatus,
		Language:      input.Language,
		IsActive:      true,
	}

	if err := s.validateProfile(user); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	interests, err := normalizeInterests(input.Interests)
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.Interests = interests

	if user.Bio, err = normalizeBio(input.Bio); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.storage.CreateUser(ctx, user, models.DefaultSearchSettings(user.ID, s.bounds))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("user already exists")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		default:
			lg.Error("storage error on CreateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("user_registered", "user_id", result.ID.String())

	return result, nil
}

// validateProfile проверяет обязательные атрибуты анкеты.
func (s *Service) validateProfile(u *models.User) error {
	if err := validateGender(u.Gender); err != nil {
		return err
	}
	if err := validateInRange("age", u.Age, s.bounds.Age); err != nil {
		return err
	}
	if err := validateInRange("height", u.Height, s.bounds.Height); err != nil {
		return err
	}
	if err := validateInRange("weight", u.Weight, s.bounds.Weight); err != nil {
		return err
	}
	if err := validateMarital(u.MaritalStatus); err != nil {
		return err
	}

	return validateLanguage(u.Language)
}

// UserByID возвращает анкету по внутреннему идентификатору.
func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "service/profiles/UserByID"

	lg := log.From(ctx).With("op", op, "user_id", id.String())

	if id == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, invalid("user_id", "empty"))
	}

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

// UserByExternalID возвращает анкету по идентификатору Telegram.
// Отсутствие анкеты -> ErrNotRegistered (является и ErrNotFound).
func (s *Service) UserByExternalID(ctx context.Context, externalID int64) (*models.User, error) {
	const op = "service/profiles/UserByExternalID"

	lg := log.From(ctx).With("op", op, "external_id", externalID)

	user, err := s.storage.UserByExternalID(ctx, externalID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Debug("user not registered")

			return nil, fmt.Errorf("%s: %w", op, ErrNotRegistered)
		default:
			lg.Error("storage error on UserByExternalID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

// UpdateProfile выполняет частичное обновление анкеты.
// Каждое переданное поле валидируется по тем же правилам, что и при регистрации;
// пустой апдейт возвращает текущую анкету без обращения к UpdateUser.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdate) (*models.User, error) {
	const op = "service/profiles/UpdateProfile"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, invalid("user_id", "empty"))
	}

	upd, err := s.buildProfileUpdate(input)
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if upd.Empty() {
		return s.UserByID(ctx, userID)
	}

	user, err := s.storage.UpdateUser(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("profile_updated")

	return user, nil
}

func (s *Service) buildProfileUpdate(in ProfileUpdate) (storage.ProfileUpdate, error) {
	var upd storage.ProfileUpdate

	if in.Username != nil {
		v := strings.TrimPrefix(strings.TrimSpace(*in.Username), "@")
		upd.Username = &v
	}

	if in.Gender != nil {
		if err := validateGender(*in.Gender); err != nil {
			return upd, err
		}
		upd.Gender = in.Gender
	}

	if in.Age != nil {
		if err := validateInRange("age", *in.Age, s.bounds.Age); err != nil {
			return upd, err
		}
		upd.Age = in.Age
	}

	if in.Height != nil {
		if err := validateInRange("height", *in.Height, s.bounds.Height); err != nil {
			return upd, err
		}
		upd.Height = in.Height
	}

	if in.Weight != nil {
		if err := validateInRange("weight", *in.Weight, s.bounds.Weight); err != nil {
			return upd, err
		}
		upd.Weight = in.Weight
	}

	if in.MaritalStatus != nil {
		if err := validateMarital(*in.MaritalStatus); err != nil {
			return upd, err
		}
		upd.MaritalStatus = in.MaritalStatus
	}

	if in.Interests != nil {
		v, err := normalizeInterests(*in.Interests)
		if err != nil {
			return upd, err
		}
		upd.Interests = &v
	}

	if in.Bio != nil {
		v, err := normalizeBio(*in.Bio)
		if err != nil {
			return upd, err
		}
		upd.Bio = &v
	}

	if in.Language != nil {
		if err := validateLanguage(*in.Language); err != nil {
			return upd, err
		}
		upd.Language = in.Language
	}

	return upd, nil
}

// SetActive включает или скрывает анкету из поиска (мягкая деактивация).
func (s *Service) SetActive(ctx context.Context, userID uuid.UUID, active bool) (*models.User, error) {
	const op = "service/profiles/SetActive"

	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "active", active)

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, invalid("user_id", "empty"))
	}

	user, err := s.storage.UpdateUser(ctx, userID, storage.ProfileUpdate{IsActive: &active})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("activity_changed")

	return user, nil
}

// SearchSettings возвращает настройки поиска пользователя.
func (s *Service) SearchSettings(ctx context.Context, userID uuid.UUID) (*models.SearchSettings, error) {
	const op = "service/profiles/SearchSettings"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	settings, err := s.storage.SearchSettings(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("search settings not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SearchSettings", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return settings, nil
}

// UpdateSearchSettings сливает апдейт с текущими настройками и сохраняет результат.
// Проверяется итог: min <= max и попадание каждого диапазона в глобальные границы.
func (s *Service) UpdateSearchSettings(ctx context.Context, userID uuid.UUID, input SettingsUpdate) (*models.SearchSettings, error) {
	const op = "service/profiles/UpdateSearchSettings"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	current, err := s.SearchSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	merged := *current
	if input.GenderPreference != nil {
		merged.GenderPreference = *input.GenderPreference
	}
	if input.Age != nil {
		merged.Age = *input.Age
	}
	if input.Height != nil {
		merged.Height = *input.Height
	}
	if input.Weight != nil {
		merged.Weight = *input.Weight
	}
	if input.MaritalPreference != nil {
		merged.MaritalPreference = *input.MaritalPreference
	}

	if err := s.validateSettings(&merged); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.storage.SaveSearchSettings(ctx, merged)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SaveSearchSettings", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("search_settings_updated")

	return saved, nil
}

// Contacts возвращает пользователей, с которыми у userID есть разрешённый контакт.
func (s *Service) Contacts(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	const op = "service/profiles/Contacts"

	users, err := s.storage.Contacts(ctx, userID)
	if err != nil {
		log.From(ctx).Error("storage error on Contacts", "op", op, "user_id", userID.String(), "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return users, nil
}
