package telegram

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-dating-bot/internal/callback"
	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/service"
)

// handleStart: зарегистрированным — меню, остальным — выбор языка и регистрация.
func (b *Bot) handleStart(ctx context.Context, c *conv) error {
	if c.registered() {
		b.dialogs.Delete(c.tgID)
		return b.showMenu(ctx, c)
	}

	b.dialogs.Put(c.tgID, &dialog{lang: c.lang})
	b.reply(ctx, c.chatID, c.t(i18n.KeyWelcome)+"\n\n"+c.t(i18n.KeyChooseLanguage), languageKeyboard(c.lang)...)

	return nil
}

// onLanguage — выбор языка: до регистрации запускает её, после — меняет язык анкеты.
func (b *Bot) onLanguage(ctx context.Context, c *conv, arg string) error {
	lang, ok := parseEnum(arg, languages)
	if !ok {
		b.reply(ctx, c.chatID, c.t(i18n.KeyInvalidValue))
		return nil
	}

	if c.registered() {
		user, err := b.svc.UpdateProfile(ctx, c.user.ID, service.ProfileUpdate{Language: &lang})
		if err != nil {
			b.replyError(ctx, c, err)
			return err
		}
		c.user, c.lang = user, lang
		b.reply(ctx, c.chatID, c.t(i18n.KeyLanguageChanged))

		return b.showMenu(ctx, c)
	}

	c.lang = lang
	d := &dialog{
		step: stepRegGender,
		lang: lang,
		reg: service.RegisterInput{
			ExternalID: c.tgID,
			Username:   c.username,
			Language:   lang,
		},
	}
	b.dialogs.Put(c.tgID, d)

	return b.promptStep(ctx, c, d)
}

func (b *Bot) onRegistrationButton(ctx context.Context, c *conv, d *dialog, data callback.Data, messageID int) error {
	switch {
	case d.step == stepRegGender && data.Action == callback.Gender:
		g, ok := parseEnum(data.Arg, genders)
		if !ok {
			break
		}
		d.reg.Gender = g
		d.step = stepRegAge
	case d.step == stepRegMarital && data.Action == callback.Marital:
		m, ok := parseEnum(data.Arg, models.MaritalStatuses)
		if !ok {
			break
		}
		d.reg.MaritalStatus = m
		d.step = stepRegInterests
	case d.step == stepRegInterests && data.Action == callback.Interest:
		return b.toggleInterest(ctx, c, d, data.Arg, messageID)
	case d.step == stepRegInterests && data.Action == callback.Done:
		d.reg.Interests = d.interests
		d.step = stepRegBio
	case d.step == stepRegBio && data.Action == callback.Skip:
		d.reg.Bio = ""
		return b.completeRegistration(ctx, c, d)
	}

	return b.promptStep(ctx, c, d)
}

// regNumber принимает возраст/рост/вес на шагах регистрации.
func (b *Bot) regNumber(ctx context.Context, c *conv, d *dialog, text string) error {
	bounds := b.svc.Bounds()

	var r models.Range
	switch d.step {
	case stepRegAge:
		r = bounds.Age
	case stepRegHeight:
		r = bounds.Height
	default:
		r = bounds.Weight
	}

	v, err := parseNumber(text, r)
	if err != nil {
		b.replyNumberError(ctx, c, err, r)
		return nil
	}

	switch d.step {
	case stepRegAge:
		d.reg.Age = v
		d.step = stepRegHeight
	case stepRegHeight:
		d.reg.Height = v
		d.step = stepRegWeight
	default:
		d.reg.Weight = v
		d.step = stepRegMarital
	}

	return b.promptStep(ctx, c, d)
}

func (b *Bot) replyNumberError(ctx context.Context, c *conv, err error, r models.Range) {
	switch {
	case errors.Is(err, errOutOfRange):
		b.reply(ctx, c.chatID, c.t(i18n.KeyOutOfBounds, "min", r.Min, "max", r.Max))
	case errors.Is(err, errBadRange):
		b.reply(ctx, c.chatID, c.t(i18n.KeyInvalidRange, "min", r.Min, "max", r.Max))
	default:
		b.reply(ctx, c.chatID, c.t(i18n.KeyInvalidNumber))
	}
}

func (b *Bot) completeRegistration(ctx context.Context, c *conv, d *dialog) error {
	user, err := b.svc.Register(ctx, d.reg)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr) && verr.Field == "bio":
			// Остаёмся на шаге bio.
			b.reply(ctx, c.chatID, c.t(i18n.KeyInvalidBio), skipKeyboard(c)...)
			return nil
		case errors.Is(err, service.ErrAlreadyExists):
			b.dialogs.Delete(c.tgID)
			b.reply(ctx, c.chatID, c.t(i18n.KeyAlreadyRegistered))
			return nil
		default:
			b.dialogs.Delete(c.tgID)
			b.replyError(ctx, c, err)
			return err
		}
	}

	b.dialogs.Delete(c.tgID)
	c.user, c.lang = user, user.Language
	log.From(ctx).Info("user_registered", "user_id", user.ID.String())

	b.reply(ctx, c.chatID, c.t(i18n.KeyRegComplete))

	return b.showMenu(ctx, c)
}

// toggleInterest переключает интерес в мультивыборе и обновляет клавиатуру.
func (b *Bot) toggleInterest(ctx context.Context, c *conv, d *dialog, arg string, messageID int) error {
	in, ok := parseEnum(arg, models.Interests)
	if !ok || (d.step != stepRegInterests && d.step != stepEditInterests) {
		return b.promptStep(ctx, c, d)
	}

	d.interests = toggle(d.interests, in)

	return b.refreshButtons(ctx, c, messageID, c.t(i18n.KeyRegInterests), interestsKeyboard(c, d.interests))
}

// refreshButtons обновляет клавиатуру сообщения с мультивыбором;
// если отредактировать не удалось, отправляет подсказку заново.
func (b *Bot) refreshButtons(ctx context.Context, c *conv, messageID int, text string, rows [][]notify.Button) error {
	if messageID > 0 {
		err := b.out.EditButtons(ctx, c.chatID, messageID, rows)
		if err == nil {
			return nil
		}
		log.From(ctx).Debug("edit_buttons_failed", "err", err)
	}

	b.reply(ctx, c.chatID, text, rows...)

	return nil
}
