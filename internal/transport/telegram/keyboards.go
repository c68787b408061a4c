package telegram

import (
	"slices"

	"github.com/pribylovaa/go-dating-bot/internal/callback"
	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
)

// Пункты главного меню (аргумент callback.Menu).
const (
	menuMain       = "main"
	menuSearch     = "search"
	menuProfile    = "profile"
	menuSettings   = "settings"
	menuRequests   = "requests"
	menuContacts   = "contacts"
	menuLanguage   = "language"
	menuDeactivate = "deactivate"
	menuReactivate = "reactivate"
)

// Поля анкеты и настроек (аргументы callback.Edit и callback.Setting).
const (
	fieldGender    = "gender"
	fieldAge       = "age"
	fieldHeight    = "height"
	fieldWeight    = "weight"
	fieldMarital   = "marital"
	fieldInterests = "interests"
	fieldBio       = "bio"
)

const checkMark = "✅ "

func btn(text, action string, arg ...string) notify.Button {
	return notify.Button{Text: text, Data: callback.Encode(action, arg...)}
}

func menuButton(c *conv, key, item string) notify.Button {
	return btn(c.t(key), callback.Menu, item)
}

func backRow(c *conv) []notify.Button {
	return []notify.Button{menuButton(c, i18n.KeyBtnBack, menuMain)}
}

func mainMenuKeyboard(c *conv) [][]notify.Button {
	activity := menuButton(c, i18n.KeyBtnDeactivate, menuDeactivate)
	if c.user != nil && !c.user.IsActive {
		activity = menuButton(c, i18n.KeyBtnReactivate, menuReactivate)
	}

	return [][]notify.Button{
		{menuButton(c, i18n.KeyBtnSearch, menuSearch)},
		{menuButton(c, i18n.KeyBtnProfile, menuProfile), menuButton(c, i18n.KeyBtnSettings, menuSettings)},
		{menuButton(c, i18n.KeyBtnRequests, menuRequests), menuButton(c, i18n.KeyBtnContacts, menuContacts)},
		{menuButton(c, i18n.KeyBtnLanguage, menuLanguage), activity},
	}
}

func languageKeyboard(lang models.Language) [][]notify.Button {
	return [][]notify.Button{{
		btn(i18n.T(lang, i18n.KeyBtnLangRU), callback.Lang, models.LanguageRU.String()),
		btn(i18n.T(lang, i18n.KeyBtnLangUZ), callback.Lang, models.LanguageUZ.String()),
	}}
}

func genderKeyboard(c *conv) [][]notify.Button {
	row := make([]notify.Button, 0, len(genders))
	for _, g := range genders {
		row = append(row, btn(i18n.Gender(c.lang, g), callback.Gender, g.String()))
	}
	return [][]notify.Button{row}
}

func maritalKeyboard(c *conv) [][]notify.Button {
	rows := make([][]notify.Button, 0, len(models.MaritalStatuses))
	for _, m := range models.MaritalStatuses {
		rows = append(rows, []notify.Button{btn(i18n.Marital(c.lang, m), callback.Marital, m.String())})
	}
	return rows
}

// interestsKeyboard — мультивыбор интересов по два в ряд, выбранные отмечены.
func interestsKeyboard(c *conv, selected []models.Interest) [][]notify.Button {
	var rows [][]notify.Button
	var row []notify.Button
	for _, in := range models.Interests {
		label := i18n.Interest(c.lang, in)
		if slices.Contains(selected, in) {
			label = checkMark + label
		}
		row = append(row, btn(label, callback.Interest, in.String()))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return append(rows, []notify.Button{btn(c.t(i18n.KeyBtnDone), callback.Done)})
}

func preferenceKeyboard(c *conv) [][]notify.Button {
	row := make([]notify.Button, 0, len(preferences))
	for _, p := range preferences {
		row = append(row, btn(i18n.GenderPreference(c.lang, p), callback.Preference, p.String()))
	}
	return [][]notify.Button{row}
}

func maritalPreferenceKeyboard(c *conv, selected []models.MaritalStatus) [][]notify.Button {
	rows := make([][]notify.Button, 0, len(models.MaritalStatuses)+1)
	for _, m := range models.MaritalStatuses {
		label := i18n.Marital(c.lang, m)
		if slices.Contains(selected, m) {
			label = checkMark + label
		}
		rows = append(rows, []notify.Button{btn(label, callback.SetMarital, m.String())})
	}

	return append(rows, []notify.Button{btn(c.t(i18n.KeyBtnDone), callback.Done)})
}

func skipKeyboard(c *conv) [][]notify.Button {
	return [][]notify.Button{{btn(c.t(i18n.KeyBtnSkip), callback.Skip)}}
}

func candidateKeyboard(c *conv, candidate models.User) [][]notify.Button {
	return [][]notify.Button{
		{btn(c.t(i18n.KeyBtnRequestAccess), callback.Request, candidate.ID.String())},
		{btn(c.t(i18n.KeyBtnNext), callback.Next)},
		backRow(c),
	}
}

func inboxKeyboard(c *conv, req models.AccessRequest) [][]notify.Button {
	id := req.ID.String()
	return [][]notify.Button{
		{btn(c.t(i18n.KeyBtnAccept), callback.Accept, id), btn(c.t(i18n.KeyBtnReject), callback.Reject, id)},
		{btn(c.t(i18n.KeyBtnNext), callback.InboxSkip)},
		backRow(c),
	}
}

func profileKeyboard(c *conv) [][]notify.Button {
	edit := func(key, field string) notify.Button { return btn(c.t(key), callback.Edit, field) }

	return [][]notify.Button{
		{edit(i18n.KeyBtnEditGender, fieldGender), edit(i18n.KeyBtnEditAge, fieldAge)},
		{edit(i18n.KeyBtnEditHeight, fieldHeight), edit(i18n.KeyBtnEditWeight, fieldWeight)},
		{edit(i18n.KeyBtnEditMarital, fieldMarital), edit(i18n.KeyBtnEditInterests, fieldInterests)},
		{edit(i18n.KeyBtnEditBio, fieldBio)},
		backRow(c),
	}
}

func settingsKeyboard(c *conv) [][]notify.Button {
	set := func(key, field string) notify.Button { return btn(c.t(key), callback.Setting, field) }

	return [][]notify.Button{
		{set(i18n.KeyBtnEditGender, fieldGender), set(i18n.KeyBtnEditAge, fieldAge)},
		{set(i18n.KeyBtnEditHeight, fieldHeight), set(i18n.KeyBtnEditWeight, fieldWeight)},
		{set(i18n.KeyBtnEditMarital, fieldMarital)},
		backRow(c),
	}
}
