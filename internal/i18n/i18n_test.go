package i18n

import (
	"testing"

	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/stretchr/testify/require"
)

func TestT_Placeholders(t *testing.T) {
	t.Parallel()

	require.Equal(t, "❌ Достигнут дневной лимит запросов (10)", T(models.LanguageRU, KeyDailyLimit, "limit", 10))
	require.Equal(t, "❌ Kunlik so'rovlar chegarasiga yetildi (3)", T(models.LanguageUZ, KeyDailyLimit, "limit", 3))

	// Лишние и непарные аргументы игнорируются.
	require.Equal(t, "✅ Найдено подходящих людей: 2", T(models.LanguageRU, KeySearchFound, "count", 2, "extra"))
	// Значения вставляются как данные, а не как шаблон.
	require.Equal(t, "✅ Найдено подходящих людей: {{.count}}", T(models.LanguageRU, KeySearchFound, "count", "{{.count}}"))
}

// Каждый текст каталогов разбирается как шаблон и не теряет подстановок.
func TestCatalogs_Templates(t *testing.T) {
	t.Parallel()

	for _, lang := range []models.Language{models.LanguageRU, models.LanguageUZ} {
		for key := range ru {
			got := T(lang, key)
			require.NotEmpty(t, got, key)
			require.NotEqual(t, key, got, key)
		}
	}
}

func TestT_Fallbacks(t *testing.T) {
	t.Parallel()

	// Ключа нет в uz — берётся ru.
	require.Equal(t, ru[KeyBtnLangRU], T(models.LanguageUZ, KeyBtnLangRU))
	// Неизвестный язык — ru.
	require.Equal(t, ru[KeyWelcome], T(models.Language(0), KeyWelcome))
	// Неизвестный ключ возвращается как есть.
	require.Equal(t, "no_such_key", T(models.LanguageRU, "no_such_key"))
}

// Каждый ключ узбекского каталога есть и в русском (fallback всегда определён).
func TestCatalogs_Consistent(t *testing.T) {
	t.Parallel()

	for key := range uz {
		_, ok := ru[key]
		require.True(t, ok, key)
	}

	for _, lang := range []models.Language{models.LanguageRU, models.LanguageUZ} {
		for _, i := range models.Interests {
			require.NotEqual(t, "interest_"+i.String(), Interest(lang, i))
		}
		for _, m := range models.MaritalStatuses {
			require.NotEqual(t, "marital_"+m.String(), Marital(lang, m))
		}
		for _, g := range []models.Gender{models.GenderMale, models.GenderFemale} {
			require.NotEqual(t, "gender_"+g.String(), Gender(lang, g))
		}
		for _, p := range []models.GenderPreference{models.PreferAll, models.PreferMale, models.PreferFemale} {
			require.NotEqual(t, "pref_"+p.String(), GenderPreference(lang, p))
		}
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Спорт, Наука", Interests(models.LanguageRU, []models.Interest{models.InterestSport, models.InterestScience}))
	require.Empty(t, Interests(models.LanguageRU, nil))
	require.Equal(t, "любое", MaritalList(models.LanguageRU, nil))
	require.Equal(t, "Ajrashgan", MaritalList(models.LanguageUZ, []models.MaritalStatus{models.MaritalDivorced}))
	require.Equal(t, "Женщины", GenderPreference(models.LanguageRU, models.PreferFemale))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := map[string]models.Language{
		"":        models.LanguageRU,
		"ru":      models.LanguageRU,
		"en-US":   models.LanguageRU,
		"uz":      models.LanguageUZ,
		"uz-UZ":   models.LanguageUZ,
		"uz-Cyrl": models.LanguageUZ,
		"%%%":     models.LanguageRU,
	}

	for code, want := range cases {
		require.Equal(t, want, Detect(code), code)
	}
}
