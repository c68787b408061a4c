package telegram

import (
	"context"
	"strings"

	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/pribylovaa/go-dating-bot/internal/ratelimit"
	"github.com/pribylovaa/go-dating-bot/internal/service"
)

func (b *Bot) showMenu(ctx context.Context, c *conv) error {
	if !c.registered() {
		b.reply(ctx, c.chatID, c.t(i18n.KeyNotRegistered))
		return nil
	}

	b.reply(ctx, c.chatID, c.t(i18n.KeyMainMenu), mainMenuKeyboard(c)...)

	return nil
}

func (b *Bot) onMenu(ctx context.Context, c *conv, item string) error {
	switch item {
	case menuSearch:
		return b.startSearch(ctx, c)
	case menuProfile:
		return b.showProfile(ctx, c)
	case menuSettings:
		return b.showSettings(ctx, c)
	case menuRequests:
		return b.showInbox(ctx, c)
	case menuContacts:
		return b.showContacts(ctx, c)
	case menuLanguage:
		b.reply(ctx, c.chatID, c.t(i18n.KeyChooseLanguage), languageKeyboard(c.lang)...)
		return nil
	case menuDeactivate:
		return b.setActive(ctx, c, false)
	case menuReactivate:
		return b.setActive(ctx, c, true)
	default:
		return b.showMenu(ctx, c)
	}
}

func (b *Bot) showProfile(ctx context.Context, c *conv) error {
	lines := []string{c.t(i18n.KeyProfileTitle), "", notify.ProfileCard(c.lang, *c.user)}
	if !c.user.IsActive {
		lines = append(lines, "", c.t(i18n.KeyProfileHidden))
	}
	lines = append(lines, "", c.t(i18n.KeyEditChoose))

	b.reply(ctx, c.chatID, strings.Join(lines, "\n"), profileKeyboard(c)...)

	return nil
}

func (b *Bot) setActive(ctx context.Context, c *conv, active bool) error {
	user, err := b.svc.SetActive(ctx, c.user.ID, active)
	if err != nil {
		b.replyError(ctx, c, err)
		return err
	}
	c.user = user

	// Скрытая анкета не ищет: брошенные сессии больше не нужны.
	if !active {
		b.searches.Delete(c.tgID)
		b.reply(ctx, c.chatID, c.t(i18n.KeyDeactivated))
	} else {
		b.reply(ctx, c.chatID, c.t(i18n.KeyReactivated))
	}

	return b.showMenu(ctx, c)
}

func (b *Bot) showContacts(ctx context.Context, c *conv) error {
	contacts, err := b.svc.Contacts(ctx, c.user.ID)
	if err != nil {
		b.replyError(ctx, c, err)
		return err
	}

	if len(contacts) == 0 {
		b.reply(ctx, c.chatID, c.t(i18n.KeyContactsEmpty), backRow(c))
		return nil
	}

	lines := make([]string, 0, len(contacts)+1)
	lines = append(lines, c.t(i18n.KeyContactsTitle))
	for _, u := range contacts {
		handle := c.t(i18n.KeyNotifyNoUsername)
		if u.Username != "" {
			handle = "@" + u.Username
		}
		lines = append(lines, c.t(i18n.KeyContactsItem,
			"gender", i18n.Gender(c.lang, u.Gender),
			"age", u.Age,
			"handle", handle,
		))
	}

	b.reply(ctx, c.chatID, strings.Join(lines, "\n"), backRow(c))

	return nil
}

// startEdit открывает диалог редактирования поля анкеты.
func (b *Bot) startEdit(ctx context.Context, c *conv, field string) error {
	d := &dialog{lang: c.lang}

	switch field {
	case fieldGender:
		d.step = stepEditGender
	case fieldAge:
		d.step = stepEditAge
	case fieldHeight:
		d.step = stepEditHeight
	case fieldWeight:
		d.step = stepEditWeight
	case fieldMarital:
		d.step = stepEditMarital
	case fieldInterests:
		d.step = stepEditInterests
		d.interests = append([]models.Interest(nil), c.user.Interests...)
	case fieldBio:
		d.step = stepEditBio
	default:
		return b.showProfile(ctx, c)
	}

	b.dialogs.Put(c.tgID, d)

	return b.promptStep(ctx, c, d)
}

// saveProfile применяет апдейт анкеты и завершает диалог редактирования.
func (b *Bot) saveProfile(ctx context.Context, c *conv, upd service.ProfileUpdate) error {
	if !b.allow(ctx, c, ratelimit.ActionProfileEdit) {
		return nil
	}

	user, err := b.svc.UpdateProfile(ctx, c.user.ID, upd)
	if err != nil {
		b.replyError(ctx, c, err)
		return err
	}

	b.dialogs.Delete(c.tgID)
	c.user = user
	b.reply(ctx, c.chatID, c.t(i18n.KeyProfileSaved))

	return b.showProfile(ctx, c)
}

func (b *Bot) editNumber(ctx context.Context, c *conv, d *dialog, text string) error {
	bounds := b.svc.Bounds()

	r := bounds.Weight
	switch d.step {
	case stepEditAge:
		r = bounds.Age
	case stepEditHeight:
		r = bounds.Height
	}

	v, err := parseNumber(text, r)
	if err != nil {
		b.replyNumberError(ctx, c, err, r)
		return nil
	}

	var upd service.ProfileUpdate
	switch d.step {
	case stepEditAge:
		upd.Age = &v
	case stepEditHeight:
		upd.Height = &v
	default:
		upd.Weight = &v
	}

	return b.saveProfile(ctx, c, upd)
}

func (b *Bot) editGender(ctx context.Context, c *conv, d *dialog, arg string) error {
	g, ok := parseEnum(arg, genders)
	if !ok || d.step != stepEditGender {
		return b.promptStep(ctx, c, d)
	}

	return b.saveProfile(ctx, c, service.ProfileUpdate{Gender: &g})
}

func (b *Bot) editMarital(ctx context.Context, c *conv, d *dialog, arg string) error {
	m, ok := parseEnum(arg, models.MaritalStatuses)
	if !ok || d.step != stepEditMarital {
		return b.promptStep(ctx, c, d)
	}

	return b.saveProfile(ctx, c, service.ProfileUpdate{MaritalStatus: &m})
}

func (b *Bot) saveInterests(ctx context.Context, c *conv, d *dialog) error {
	interests := d.interests
	if interests == nil {
		interests = []models.Interest{}
	}

	return b.saveProfile(ctx, c, service.ProfileUpdate{Interests: &interests})
}

// editBio сохраняет описание; пустой текст очищает его.
func (b *Bot) editBio(ctx context.Context, c *conv, d *dialog, text string) error {
	if d.step != stepEditBio {
		return b.promptStep(ctx, c, d)
	}

	return b.saveProfile(ctx, c, service.ProfileUpdate{Bio: &text})
}
