// i18n — каталог текстов бота на русском и узбекском.
//
// Тексты адресуются ключами и являются шаблонами go-i18n с именованными
// полями вида {{.name}}. Отсутствующий в выбранном языке ключ берётся
// из русского каталога (язык бандла по умолчанию), отсутствующий везде —
// возвращается как есть.
package i18n

import (
	"fmt"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"golang.org/x/text/language"
)

var localizers = newLocalizers()

func newLocalizers() map[models.Language]*goi18n.Localizer {
	bundle := goi18n.NewBundle(language.Russian)

	catalogs := []struct {
		lang  models.Language
		tag   language.Tag
		texts map[string]string
	}{
		{models.LanguageRU, language.Russian, ru},
		{models.LanguageUZ, language.Uzbek, uz},
	}

	out := make(map[models.Language]*goi18n.Localizer, len(catalogs))
	for _, c := range catalogs {
		msgs := make([]*goi18n.Message, 0, len(c.texts))
		for id, text := range c.texts {
			msgs = append(msgs, &goi18n.Message{ID: id, Other: text})
		}
		bundle.MustAddMessages(c.tag, msgs...)
		out[c.lang] = goi18n.NewLocalizer(bundle, c.tag.String())
	}

	return out
}

// T возвращает локализованный текст key, подставляя пары name/value из args.
//
//	i18n.T(models.LanguageRU, KeyDailyLimit, "limit", 10)
func T(lang models.Language, key string, args ...any) string {
	loc, ok := localizers[lang]
	if !ok {
		loc = localizers[models.LanguageRU]
	}

	data := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		data[fmt.Sprint(args[i])] = args[i+1]
	}

	// При переходе на язык по умолчанию go-i18n может вернуть текст вместе с ошибкой.
	text, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if text == "" && err != nil {
		return key
	}

	return text
}

var uzbek = language.MustParseBase("uz")

// Detect выбирает язык интерфейса по коду языка клиента Telegram (BCP 47):
// узбекский для uz/uz-Latn/uz-UZ, иначе русский.
func Detect(code string) models.Language {
	if code == "" {
		return models.LanguageRU
	}

	tag, err := language.Parse(code)
	if err != nil {
		return models.LanguageRU
	}

	if base, _ := tag.Base(); base == uzbek {
		return models.LanguageUZ
	}

	return models.LanguageRU
}

// Gender возвращает подпись пола.
func Gender(lang models.Language, g models.Gender) string {
	return T(lang, "gender_"+g.String())
}

// Marital возвращает подпись семейного положения.
func Marital(lang models.Language, m models.MaritalStatus) string {
	return T(lang, "marital_"+m.String())
}

// Interest возвращает подпись интереса.
func Interest(lang models.Language, i models.Interest) string {
	return T(lang, "interest_"+i.String())
}

// GenderPreference возвращает подпись предпочтения по полу.
func GenderPreference(lang models.Language, p models.GenderPreference) string {
	return T(lang, "pref_"+p.String())
}

// Interests перечисляет интересы через запятую.
func Interests(lang models.Language, in []models.Interest) string {
	names := make([]string, 0, len(in))
	for _, i := range in {
		names = append(names, Interest(lang, i))
	}

	return strings.Join(names, ", ")
}

// MaritalList перечисляет набор семейных положений; пустой набор — «любое».
func MaritalList(lang models.Language, in []models.MaritalStatus) string {
	if len(in) == 0 {
		return T(lang, KeyAny)
	}

	names := make([]string, 0, len(in))
	for _, m := range in {
		names = append(names, Marital(lang, m))
	}

	return strings.Join(names, ", ")
}
