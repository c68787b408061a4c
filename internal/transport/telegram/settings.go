package telegram

import (
	"context"
	"strings"

	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/ratelimit"
	"github.com/pribylovaa/go-dating-bot/internal/service"
)

func (b *Bot) showSettings(ctx context.Context, c *conv) error {
	st, err := b.svc.SearchSettings(ctx, c.user.ID)
	if err != nil {
		b.replyError(ctx, c, err)
		return err
	}

	text := strings.Join([]string{
		c.t(i18n.KeySettingsTitle),
		"",
		c.t(i18n.KeySettingsGender, "preference", i18n.GenderPreference(c.lang, st.GenderPreference)),
		c.t(i18n.KeySettingsAge, "min", st.Age.Min, "max", st.Age.Max),
		c.t(i18n.KeySettingsHeight, "min", st.Height.Min, "max", st.Height.Max),
		c.t(i18n.KeySettingsWeight, "min", st.Weight.Min, "max", st.Weight.Max),
		c.t(i18n.KeySettingsMarital, "preference", i18n.MaritalList(c.lang, st.MaritalPreference)),
	}, "\n")

	b.reply(ctx, c.chatID, text, settingsKeyboard(c)...)

	return nil
}

func (b *Bot) startSetting(ctx context.Context, c *conv, field string) error {
	d := &dialog{lang: c.lang}

	switch field {
	case fieldGender:
		d.step = stepSetGender
	case fieldAge:
		d.step = stepSetAge
	case fieldHeight:
		d.step = stepSetHeight
	case fieldWeight:
		d.step = stepSetWeight
	case fieldMarital:
		st, err := b.svc.SearchSettings(ctx, c.user.ID)
		if err != nil {
			b.replyError(ctx, c, err)
			return err
		}
		d.step = stepSetMarital
		d.marital = append([]models.MaritalStatus(nil), st.MaritalPreference...)
	default:
		return b.showSettings(ctx, c)
	}

	b.dialogs.Put(c.tgID, d)

	return b.promptStep(ctx, c, d)
}

// saveSettings применяет апдейт настроек. Сессия поиска сбрасывается:
// её снимок посчитан по старым фильтрам.
func (b *Bot) saveSettings(ctx context.Context, c *conv, upd service.SettingsUpdate) error {
	if !b.allow(ctx, c, ratelimit.ActionSettingsEdit) {
		return nil
	}

	if _, err := b.svc.UpdateSearchSettings(ctx, c.user.ID, upd); err != nil {
		b.replyError(ctx, c, err)
		return err
	}

	b.dialogs.Delete(c.tgID)
	b.searches.Delete(c.tgID)
	b.reply(ctx, c.chatID, c.t(i18n.KeySettingsSaved))

	return b.showSettings(ctx, c)
}

func (b *Bot) setRange(ctx context.Context, c *conv, d *dialog, text string) error {
	bounds := b.svc.Bounds()

	r := bounds.Weight
	switch d.step {
	case stepSetAge:
		r = bounds.Age
	case stepSetHeight:
		r = bounds.Height
	}

	v, err := parseRange(text, r)
	if err != nil {
		b.replyNumberError(ctx, c, err, r)
		return nil
	}

	var upd service.SettingsUpdate
	switch d.step {
	case stepSetAge:
		upd.Age = &v
	case stepSetHeight:
		upd.Height = &v
	default:
		upd.Weight = &v
	}

	return b.saveSettings(ctx, c, upd)
}

func (b *Bot) setPreference(ctx context.Context, c *conv, arg string) error {
	p, ok := parseEnum(arg, preferences)
	if !ok {
		b.reply(ctx, c.chatID, c.t(i18n.KeyInvalidValue))
		return nil
	}

	return b.saveSettings(ctx, c, service.SettingsUpdate{GenderPreference: &p})
}

func (b *Bot) toggleMaritalPreference(ctx context.Context, c *conv, d *dialog, arg string, messageID int) error {
	m, ok := parseEnum(arg, models.MaritalStatuses)
	if !ok || d.step != stepSetMarital {
		return b.promptStep(ctx, c, d)
	}

	d.marital = toggle(d.marital, m)

	return b.refreshButtons(ctx, c, messageID, c.t(i18n.KeySettingsChooseMarital), maritalPreferenceKeyboard(c, d.marital))
}

// saveMaritalPreference: пустой выбор означает «любое».
func (b *Bot) saveMaritalPreference(ctx context.Context, c *conv, d *dialog) error {
	marital := d.marital
	if marital == nil {
		marital = []models.MaritalStatus{}
	}

	return b.saveSettings(ctx, c, service.SettingsUpdate{MaritalPreference: &marital})
}
