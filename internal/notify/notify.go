// notify — диспетчер уведомлений журнала запросов.
//
// Dispatcher форматирует локализованные сообщения на языке получателя и
// отправляет их через транспортно-нейтральный Sender. Ошибка доставки
// возвращается вызывающему (сервис её логирует) и учитывается в метриках,
// но никогда не откатывает состояние журнала.
package notify

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/go-dating-bot/internal/callback"
	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/metrics"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
)

// Виды уведомлений (лейбл kind в метриках).
const (
	KindNewRequest    = "new_request"
	KindAccessGranted = "access_granted"
	KindDailySummary  = "daily_summary"
)

// Button — inline-кнопка сообщения.
type Button struct {
	Text string
	Data string
}

// Message — исходящее сообщение в чат пользователя.
type Message struct {
	ChatID  int64
	Text    string
	Buttons [][]Button
}

// Sender — канал доставки сообщений.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher реализует service.Notifier поверх Sender.
type Dispatcher struct {
	sender  Sender
	metrics *metrics.Metrics
	timeout time.Duration
}

// New создаёт диспетчер. timeout ограничивает одну доставку (<= 0 — без ограничения).
func New(sender Sender, m *metrics.Metrics, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		metrics: m,
		timeout: timeout,
	}
}

// NotifyNewRequest отправляет адресату анкету автора запроса и кнопки принять/отклонить.
func (d *Dispatcher) NotifyNewRequest(ctx context.Context, req models.AccessRequest, from, to models.User) error {
	const op = "notify/NotifyNewRequest"

	lang := to.Language
	text := strings.Join([]string{
		i18n.T(lang, i18n.KeyNotifyNewRequest),
		ProfileCard(lang, from),
		i18n.T(lang, i18n.KeyNotifyQuestion),
	}, "\n\n")

	id := req.ID.String()
	msg := Message{
		ChatID: to.ExternalID,
		Text:   text,
		Buttons: [][]Button{{
			{Text: i18n.T(lang, i18n.KeyBtnAccept), Data: callback.Encode(callback.Accept, id)},
			{Text: i18n.T(lang, i18n.KeyBtnReject), Data: callback.Encode(callback.Reject, id)},
		}},
	}

	if err := d.deliver(ctx, KindNewRequest, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// NotifyAccessGranted сообщает автору запроса, что адресат открыл контакт.
// Если у адресата нет username, отправляется заглушка.
func (d *Dispatcher) NotifyAccessGranted(ctx context.Context, req models.AccessRequest, from, to models.User) error {
	const op = "notify/NotifyAccessGranted"

	lang := from.Language
	handle := i18n.T(lang, i18n.KeyNotifyNoUsername)
	if to.Username != "" {
		handle = i18n.T(lang, i18n.KeyNotifyUsername, "username", to.Username)
	}

	text := i18n.T(lang, i18n.KeyNotifyAccessGranted,
		"gender", i18n.Gender(lang, to.Gender),
		"age", to.Age,
	) + "\n\n" + handle

	msg := Message{ChatID: from.ExternalID, Text: text}
	if err := d.deliver(ctx, KindAccessGranted, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Debug("access_granted_delivered", "request_id", req.ID.String())

	return nil
}

// SendDailySummary отправляет сводку активности за день.
func (d *Dispatcher) SendDailySummary(ctx context.Context, user models.User, stats models.DailyStats) error {
	const op = "notify/SendDailySummary"

	msg := Message{
		ChatID: user.ExternalID,
		Text: i18n.T(user.Language, i18n.KeyNotifySummary,
			"pending", stats.IncomingPending,
			"accepted", stats.IncomingAccepted,
			"sent", stats.Sent,
		),
	}

	if err := d.deliver(ctx, KindDailySummary, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, kind string, msg Message) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	err := d.sender.Send(ctx, msg)
	d.metrics.ObserveNotification(kind, err)

	return err
}

// ProfileCard — публичная карточка анкеты без контактов.
func ProfileCard(lang models.Language, u models.User) string {
	lines := []string{
		i18n.T(lang, i18n.KeyCardGender, "gender", i18n.Gender(lang, u.Gender), "age", strconv.Itoa(u.Age)),
		i18n.T(lang, i18n.KeyCardHeight, "height", u.Height),
		i18n.T(lang, i18n.KeyCardWeight, "weight", u.Weight),
		i18n.T(lang, i18n.KeyCardMarital, "status", i18n.Marital(lang, u.MaritalStatus)),
	}

	if len(u.Interests) > 0 {
		lines = append(lines, i18n.T(lang, i18n.KeyCardInterests, "interests", i18n.Interests(lang, u.Interests)))
	}
	if u.Bio != "" {
		lines = append(lines, "", i18n.T(lang, i18n.KeyCardBio, "bio", u.Bio))
	}

	return strings.Join(lines, "\n")
}
