package telegram

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/service"
)

// step — шаг многошагового диалога.
type step int

const (
	stepNone step = iota

	stepRegGender
	stepRegAge
	stepRegHeight
	stepRegWeight
	stepRegMarital
	stepRegInterests
	stepRegBio

	stepEditGender
	stepEditAge
	stepEditHeight
	stepEditWeight
	stepEditMarital
	stepEditInterests
	stepEditBio

	stepSetGender
	stepSetAge
	stepSetHeight
	stepSetWeight
	stepSetMarital
)

// registering — шаг относится к регистрации.
func (s step) registering() bool {
	return s >= stepRegGender && s <= stepRegBio
}

// dialog — состояние незавершённого диалога пользователя.
type dialog struct {
	step step
	lang models.Language

	reg service.RegisterInput

	// Мультивыбор интересов (регистрация и редактирование).
	interests []models.Interest
	// Мультивыбор семейного положения в настройках поиска.
	marital []models.MaritalStatus
}

func toggle[T comparable](set []T, v T) []T {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(set, i, i+1)
	}
	return append(set, v)
}

// enum — закрытые наборы моделей, кодируемые в callback по имени.
type enum interface {
	comparable
	String() string
}

func parseEnum[T enum](name string, values []T) (T, bool) {
	for _, v := range values {
		if v.String() == name {
			return v, true
		}
	}

	var zero T
	return zero, false
}

var (
	genders     = []models.Gender{models.GenderMale, models.GenderFemale}
	preferences = []models.GenderPreference{models.PreferAll, models.PreferMale, models.PreferFemale}
	languages   = []models.Language{models.LanguageRU, models.LanguageUZ}
)

var (
	errNotNumber  = errors.New("not a number")
	errBadRange   = errors.New("malformed range")
	errOutOfRange = errors.New("out of bounds")
)

// parseNumber разбирает целое число внутри границ.
func parseNumber(text string, bounds models.Range) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errNotNumber
	}
	if !bounds.Contains(v) {
		return 0, errOutOfRange
	}

	return v, nil
}

var dashes = strings.NewReplacer("–", "-", "—", "-", " ", "")

// parseRange разбирает диапазон вида "20-30" внутри границ.
func parseRange(text string, bounds models.Range) (models.Range, error) {
	minS, maxS, ok := strings.Cut(dashes.Replace(strings.TrimSpace(text)), "-")
	if !ok {
		return models.Range{}, errBadRange
	}

	lo, err := strconv.Atoi(minS)
	if err != nil {
		return models.Range{}, errBadRange
	}
	hi, err := strconv.Atoi(maxS)
	if err != nil {
		return models.Range{}, errBadRange
	}

	r := models.Range{Min: lo, Max: hi}
	if r.Min > r.Max {
		return models.Range{}, errBadRange
	}
	if !r.Within(bounds) {
		return models.Range{}, errOutOfRange
	}

	return r, nil
}
