package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pribylovaa/go-dating-bot/internal/callback"
	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/service"
)

// Команды чата.
const (
	cmdStart  = "start"
	cmdMenu   = "menu"
	cmdCancel = "cancel"
)

func (b *Bot) handleMessage(ctx context.Context, c *conv, msg *tgbotapi.Message) error {
	if msg.IsCommand() {
		switch msg.Command() {
		case cmdStart:
			return b.handleStart(ctx, c)
		case cmdCancel:
			b.dialogs.Delete(c.tgID)
			b.reply(ctx, c.chatID, c.t(i18n.KeyCancelled))
			return b.showMenu(ctx, c)
		case cmdMenu:
			b.dialogs.Delete(c.tgID)
			return b.showMenu(ctx, c)
		}
	}

	d, ok := b.dialogs.Get(c.tgID)
	if !ok {
		return b.showMenu(ctx, c)
	}

	text := strings.TrimSpace(msg.Text)

	switch d.step {
	case stepRegAge, stepRegHeight, stepRegWeight:
		return b.regNumber(ctx, c, d, text)
	case stepRegBio:
		d.reg.Bio = text
		return b.completeRegistration(ctx, c, d)
	case stepEditAge, stepEditHeight, stepEditWeight:
		return b.editNumber(ctx, c, d, text)
	case stepEditBio:
		return b.editBio(ctx, c, d, text)
	case stepSetAge, stepSetHeight, stepSetWeight:
		return b.setRange(ctx, c, d, text)
	default:
		// Шаг ждёт нажатия кнопки: повторяем подсказку.
		return b.promptStep(ctx, c, d)
	}
}

func (b *Bot) handleCallback(ctx context.Context, c *conv, q *tgbotapi.CallbackQuery) error {
	const op = "transport/telegram/handlers/handleCallback"

	data, err := callback.Decode(q.Data)
	if err != nil {
		b.answer(ctx, q.ID, "")
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx = log.With(ctx, "action", data.Action)
	defer b.answer(ctx, q.ID, "")

	if data.Action == callback.Lang {
		return b.onLanguage(ctx, c, data.Arg)
	}

	d, inDialog := b.dialogs.Get(c.tgID)

	// До завершения регистрации доступны только кнопки диалога регистрации.
	if !c.registered() {
		if !inDialog || !d.step.registering() {
			b.reply(ctx, c.chatID, c.t(i18n.KeyNotRegistered))
			return nil
		}
		return b.onRegistrationButton(ctx, c, d, data, q.Message.MessageID)
	}

	switch data.Action {
	case callback.Menu:
		b.dialogs.Delete(c.tgID)
		return b.onMenu(ctx, c, data.Arg)
	case callback.Request:
		return b.onRequestAccess(ctx, c, data.Arg)
	case callback.Next:
		return b.showNextCandidate(ctx, c)
	case callback.Accept:
		return b.onResolve(ctx, c, data.Arg, true)
	case callback.Reject:
		return b.onResolve(ctx, c, data.Arg, false)
	case callback.InboxSkip:
		return b.showNextRequest(ctx, c)
	case callback.Edit:
		return b.startEdit(ctx, c, data.Arg)
	case callback.Setting:
		return b.startSetting(ctx, c, data.Arg)
	}

	if !inDialog {
		return b.showMenu(ctx, c)
	}

	switch data.Action {
	case callback.Gender:
		return b.editGender(ctx, c, d, data.Arg)
	case callback.Marital:
		return b.editMarital(ctx, c, d, data.Arg)
	case callback.Interest:
		return b.toggleInterest(ctx, c, d, data.Arg, q.Message.MessageID)
	case callback.Done:
		return b.onDone(ctx, c, d)
	case callback.Skip:
		if d.step == stepEditBio {
			return b.editBio(ctx, c, d, "")
		}
	case callback.Preference:
		return b.setPreference(ctx, c, data.Arg)
	case callback.SetMarital:
		return b.toggleMaritalPreference(ctx, c, d, data.Arg, q.Message.MessageID)
	}

	return b.promptStep(ctx, c, d)
}

func (b *Bot) onDone(ctx context.Context, c *conv, d *dialog) error {
	switch d.step {
	case stepEditInterests:
		return b.saveInterests(ctx, c, d)
	case stepSetMarital:
		return b.saveMaritalPreference(ctx, c, d)
	default:
		return b.promptStep(ctx, c, d)
	}
}

// promptStep повторяет подсказку текущего шага диалога.
func (b *Bot) promptStep(ctx context.Context, c *conv, d *dialog) error {
	bounds := b.svc.Bounds()

	switch d.step {
	case stepRegGender, stepEditGender:
		b.reply(ctx, c.chatID, c.t(i18n.KeyRegGender), genderKeyboard(c)...)
	case stepRegAge, stepEditAge:
		b.reply(ctx, c.chatID, c.t(i18n.KeyRegAge, "min", bounds.Age.Min, "max", bounds.Age.Max))
	case stepRegHeight, stepEditHeight:
		b.reply(ctx, c.chatID, c.t(i18n.KeyRegHeight, "min", bounds.Height.Min, "max", bounds.Height.Max))
	case stepRegWeight, stepEditWeight:
		b.reply(ctx, c.chatID, c.t(i18n.KeyRegWeight, "min", bounds.Weight.Min, "max", bounds.Weight.Max))
	case stepRegMarital, stepEditMarital:
		b.reply(ctx, c.chatID, c.t(i18n.KeyRegMarital), maritalKeyboard(c)...)
	case stepRegInterests, stepEditInterests:
		b.reply(ctx, c.chatID, c.t(i18n.KeyRegInterests), interestsKeyboard(c, d.interests)...)
	case stepRegBio, stepEditBio:
		b.reply(ctx, c.chatID, c.t(i18n.KeyRegBio), skipKeyboard(c)...)
	case stepSetGender:
		b.reply(ctx, c.chatID, c.t(i18n.KeySettingsChooseGender), preferenceKeyboard(c)...)
	case stepSetAge:
		b.reply(ctx, c.chatID, c.t(i18n.KeySettingsEnterRange, "min", bounds.Age.Min, "max", bounds.Age.Max))
	case stepSetHeight:
		b.reply(ctx, c.chatID, c.t(i18n.KeySettingsEnterRange, "min", bounds.Height.Min, "max", bounds.Height.Max))
	case stepSetWeight:
		b.reply(ctx, c.chatID, c.t(i18n.KeySettingsEnterRange, "min", bounds.Weight.Min, "max", bounds.Weight.Max))
	case stepSetMarital:
		b.reply(ctx, c.chatID, c.t(i18n.KeySettingsChooseMarital), maritalPreferenceKeyboard(c, d.marital)...)
	default:
		return b.showMenu(ctx, c)
	}

	return nil
}

// replyError переводит ошибку сервиса в текст для пользователя.
func (b *Bot) replyError(ctx context.Context, c *conv, err error) {
	key := i18n.KeyErrorOccurred
	var args []any

	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		key, args = i18n.KeyDailyLimit, []any{"limit", b.opts.DailyLimit}
	case errors.Is(err, service.ErrInvalidState):
		key = i18n.KeyAlreadyHandled
	case errors.Is(err, service.ErrNotRegistered):
		key = i18n.KeyNotRegistered
	case errors.As(err, &verr) && verr.Field == "bio":
		key = i18n.KeyInvalidBio
	case errors.Is(err, service.ErrInvalidArgument):
		key = i18n.KeyInvalidValue
	}

	b.reply(ctx, c.chatID, c.t(key, args...))
}
