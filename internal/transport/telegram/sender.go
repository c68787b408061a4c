package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/redact"
	"golang.org/x/time/rate"
)

// sendRate — глобальный лимит исходящих сообщений Bot API (сообщений в секунду).
const sendRate = 30

// botAPI — используемая часть *tgbotapi.BotAPI.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Sender отправляет сообщения через Bot API, соблюдая глобальный лимит частоты.
// Реализует notify.Sender.
type Sender struct {
	api     botAPI
	limiter *rate.Limiter
	token   string
}

// NewSender создаёт Sender поверх клиента Bot API. token вырезается
// из текста ошибок: сетевые ошибки клиента содержат полный URL метода.
func NewSender(api botAPI, token string) *Sender {
	return &Sender{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(sendRate), sendRate),
		token:   token,
	}
}

// Send отправляет текстовое сообщение с inline-кнопками.
func (s *Sender) Send(ctx context.Context, msg notify.Message) error {
	const op = "transport/telegram/sender/Send"

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if len(msg.Buttons) > 0 {
		out.ReplyMarkup = inlineKeyboard(msg.Buttons)
	}

	if _, err := s.api.Send(out); err != nil {
		return s.wrap(op, err)
	}

	return nil
}

// EditButtons заменяет inline-клавиатуру ранее отправленного сообщения.
func (s *Sender) EditButtons(ctx context.Context, chatID int64, messageID int, buttons [][]notify.Button) error {
	const op = "transport/telegram/sender/EditButtons"

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, inlineKeyboard(buttons))
	if _, err := s.api.Request(edit); err != nil {
		return s.wrap(op, err)
	}

	return nil
}

// Answer подтверждает нажатие inline-кнопки (снимает «часики» в клиенте).
func (s *Sender) Answer(ctx context.Context, callbackID, text string) error {
	const op = "transport/telegram/sender/Answer"

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return s.wrap(op, err)
	}

	return nil
}

// wrap оборачивает ошибку Bot API. Если текст содержит токен, цепочка
// обрывается: исходная ошибка не должна попасть в лог.
func (s *Sender) wrap(op string, err error) error {
	if s.token != "" && strings.Contains(err.Error(), s.token) {
		return fmt.Errorf("%s: %s", op, redact.Secret(err.Error(), s.token))
	}

	return fmt.Errorf("%s: %w", op, err)
}

func inlineKeyboard(rows [][]notify.Button) tgbotapi.InlineKeyboardMarkup {
	out := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		out = append(out, tgbotapi.NewInlineKeyboardRow(btns...))
	}

	return tgbotapi.NewInlineKeyboardMarkup(out...)
}
