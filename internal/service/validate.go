package service

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/go-dating-bot/internal/models"
)

// MaxBioLength — предел длины описания «о себе» в символах.
const MaxBioLength = 500

var (
	reBioURL     = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)
	reBioMention = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	reBioHashtag = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	reHTMLTag    = regexp.MustCompile(`<[^>]+>`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func validateInRange(field string, v int, r models.Range) error {
	if !r.Contains(v) {
		return invalid(field, "must be between %d and %d", r.Min, r.Max)
	}

	return nil
}

func validateGender(g models.Gender) error {
	if !g.Valid() {
		return invalid("gender", "unknown value %d", g)
	}

	return nil
}

func validateMarital(m models.MaritalStatus) error {
	if !m.Valid() {
		return invalid("marital_status", "unknown value %d", m)
	}

	return nil
}

func validateLanguage(l models.Language) error {
	if !l.Valid() {
		return invalid("language", "unknown value %d", l)
	}

	return nil
}

// normalizeInterests проверяет теги и возвращает отсортированный набор без повторов.
func normalizeInterests(in []models.Interest) ([]models.Interest, error) {
	out := make([]models.Interest, 0, len(in))
	for _, i := range in {
		if !i.Valid() {
			return nil, invalid("interests", "unknown value %d", i)
		}
		if !slices.Contains(out, i) {
			out = append(out, i)
		}
	}

	slices.Sort(out)

	return out, nil
}

// normalizeMarital — то же для набора предпочтений по семейному положению.
func normalizeMarital(in []models.MaritalStatus) ([]models.MaritalStatus, error) {
	out := make([]models.MaritalStatus, 0, len(in))
	for _, m := range in {
		if !m.Valid() {
			return nil, invalid("marital_preference", "unknown value %d", m)
		}
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}

	slices.Sort(out)

	return out, nil
}

// normalizeBio проверяет описание и возвращает его очищенную версию.
// Запрещены ссылки, @упоминания, #теги и HTML; длина не более MaxBioLength символов.
func normalizeBio(bio string) (string, error) {
	bio = strings.TrimSpace(bio)
	if bio == "" {
		return "", nil
	}

	if utf8.RuneCountInString(bio) > MaxBioLength {
		return "", invalid("bio", "longer than %d characters", MaxBioLength)
	}

	for _, re := range []*regexp.Regexp{reBioURL, reBioMention, reBioHashtag, reHTMLTag} {
		if re.MatchString(bio) {
			return "", invalid("bio", "links, mentions, hashtags and markup are not allowed")
		}
	}

	return collapseSpaces(bio), nil
}

// collapseSpaces заменяет серии пробельных символов одним пробелом.
func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// validateSettings проверяет итоговые настройки поиска целиком.
func (s *Service) validateSettings(st *models.SearchSettings) error {
	if !st.GenderPreference.Valid() {
		return invalid("gender_preference", "unknown value %d", st.GenderPreference)
	}

	checks := []struct {
		field string
		r     models.Range
		outer models.Range
	}{
		{"age", st.Age, s.bounds.Age},
		{"height", st.Height, s.bounds.Height},
		{"weight", st.Weight, s.bounds.Weight},
	}

	for _, c := range checks {
		if c.r.Min > c.r.Max {
			return invalid(c.field, "min %d is greater than max %d", c.r.Min, c.r.Max)
		}
		if !c.r.Within(c.outer) {
			return invalid(c.field, "range must lie within %d-%d", c.outer.Min, c.outer.Max)
		}
	}

	marital, err := normalizeMarital(st.MaritalPreference)
	if err != nil {
		return err
	}
	st.MaritalPreference = marital

	return nil
}
