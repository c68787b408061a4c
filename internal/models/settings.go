package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// GenderPreference — кого пользователь хочет видеть в поиске.
type GenderPreference int8

const (
	PreferUnspecified GenderPreference = iota
	PreferAll
	PreferMale
	PreferFemale
)

func (p GenderPreference) String() string {
	switch p {
	case PreferAll:
		return "all"
	case PreferMale:
		return "male"
	case PreferFemale:
		return "female"
	default:
		return "unspecified"
	}
}

func (p GenderPreference) Valid() bool {
	return p >= PreferAll && p <= PreferFemale
}

// Gender возвращает пол, которым ограничен поиск; ok=false для PreferAll.
func (p GenderPreference) Gender() (Gender, bool) {
	switch p {
	case PreferMale:
		return GenderMale, true
	case PreferFemale:
		return GenderFemale, true
	default:
		return GenderUnspecified, false
	}
}

// Range — включительный целочисленный диапазон [Min, Max].
type Range struct {
	Min int
	Max int
}

// Contains проверяет v ∈ [Min, Max].
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Within проверяет, что диапазон корректен и лежит внутри outer.
func (r Range) Within(outer Range) bool {
	return r.Min <= r.Max && r.Min >= outer.Min && r.Max <= outer.Max
}

// Bounds — глобальные границы атрибутов анкеты.
type Bounds struct {
	Age    Range
	Height Range
	Weight Range
}

// DefaultBounds — границы по умолчанию: возраст 18–100, рост 140–220, вес 40–200.
func DefaultBounds() Bounds {
	return Bounds{
		Age:    Range{Min: 18, Max: 100},
		Height: Range{Min: 140, Max: 220},
		Weight: Range{Min: 40, Max: 200},
	}
}

// SearchSettings — параметры поиска, один к одному с User.
// Пустой MaritalPreference означает «любое семейное положение».
type SearchSettings struct {
	UserID            uuid.UUID
	GenderPreference  GenderPreference
	Age               Range
	Height            Range
	Weight            Range
	MaritalPreference []MaritalStatus
	UpdatedAt         time.Time
}

// DefaultSearchSettings — настройки, создаваемые при регистрации.
func DefaultSearchSettings(userID uuid.UUID, b Bounds) SearchSettings {
	return SearchSettings{
		UserID:           userID,
		GenderPreference: PreferAll,
		Age:              b.Age,
		Height:           b.Height,
		Weight:           b.Weight,
	}
}

// Matches проверяет жёсткие фильтры настроек для кандидата.
// Исключения (сам пользователь, неактивные, уже запрошенные) сюда не входят.
func (s SearchSettings) Matches(u User) bool {
	if g, ok := s.GenderPreference.Gender(); ok && u.Gender != g {
		return false
	}

	if !s.Age.Contains(u.Age) || !s.Height.Contains(u.Height) || !s.Weight.Contains(u.Weight) {
		return false
	}

	if len(s.MaritalPreference) > 0 && !slices.Contains(s.MaritalPreference, u.MaritalStatus) {
		return false
	}

	return true
}
