// telegram — диалоговый фронтенд бота на Telegram Bot API.
//
// Апдейты обрабатываются последовательно одним циклом Run, поэтому действия
// одного пользователя никогда не переупорядочиваются. Состояние диалога,
// сессии поиска и просмотра входящих живут в памяти процесса.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/metrics"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/redact"
	"github.com/pribylovaa/go-dating-bot/internal/ratelimit"
	"github.com/pribylovaa/go-dating-bot/internal/service"
	"github.com/pribylovaa/go-dating-bot/internal/session"
)

// Service — операции ядра, используемые фронтендом.
type Service interface {
	Bounds() models.Bounds

	Register(ctx context.Context, input service.RegisterInput) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UserByExternalID(ctx context.Context, externalID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input service.ProfileUpdate) (*models.User, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) (*models.User, error)
	SearchSettings(ctx context.Context, userID uuid.UUID) (*models.SearchSettings, error)
	UpdateSearchSettings(ctx context.Context, userID uuid.UUID, input service.SettingsUpdate) (*models.SearchSettings, error)
	Contacts(ctx context.Context, userID uuid.UUID) ([]models.User, error)

	FindCandidates(ctx context.Context, userID uuid.UUID, settings *models.SearchSettings) ([]models.User, error)
	RequestAccess(ctx context.Context, fromID, toID uuid.UUID) (service.CreateRequestResult, error)
	RemainingRequests(ctx context.Context, userID uuid.UUID) (int, error)
	Accept(ctx context.Context, requestID, actingUserID uuid.UUID) (*models.AccessRequest, error)
	Reject(ctx context.Context, requestID, actingUserID uuid.UUID) (*models.AccessRequest, error)
	PendingInbox(ctx context.Context, userID uuid.UUID) ([]models.AccessRequest, error)
}

// messenger — исходящая сторона чата.
type messenger interface {
	Send(ctx context.Context, msg notify.Message) error
	EditButtons(ctx context.Context, chatID int64, messageID int, buttons [][]notify.Button) error
	Answer(ctx context.Context, callbackID, text string) error
}

// Options — параметры фронтенда.
type Options struct {
	// PollTimeout — таймаут long polling getUpdates.
	PollTimeout time.Duration
	// UpdateTimeout — дедлайн обработки одного апдейта.
	UpdateTimeout time.Duration
	// DailyLimit — дневная квота запросов (для текста об исчерпании).
	DailyLimit int
	// SessionTTL — время жизни неактивных сессий диалога/поиска.
	SessionTTL time.Duration
	// MaxSessions — предел числа сессий каждого вида.
	MaxSessions int
}

const defaultSessionTTL = time.Hour

// Виды апдейтов (лейбл kind в метриках).
const (
	kindMessage  = "message"
	kindCallback = "callback"
)

// Bot — обработчик апдейтов Telegram.
type Bot struct {
	api     botAPI
	out     messenger
	svc     Service
	limiter ratelimit.Limiter
	metrics *metrics.Metrics
	opts    Options

	dialogs  *session.Store[*dialog]
	searches *session.Store[*session.Search]
	inboxes  *session.Store[*session.Inbox]
	now      func() time.Time
}

// New собирает бота. limiter и m могут быть nil.
func New(api botAPI, out messenger, svc Service, limiter ratelimit.Limiter, m *metrics.Metrics, opts Options) *Bot {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = session.DefaultMaxSessions
	}

	return &Bot{
		api:      api,
		out:      out,
		svc:      svc,
		limiter:  limiter,
		metrics:  m,
		opts:     opts,
		dialogs:  session.NewStore[*dialog](opts.MaxSessions, opts.SessionTTL),
		searches: session.NewStore[*session.Search](opts.MaxSessions, opts.SessionTTL),
		inboxes:  session.NewStore[*session.Inbox](opts.MaxSessions, opts.SessionTTL),
		now:      time.Now,
	}
}

// Run читает апдейты long polling'ом и обрабатывает их по одному до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	const op = "transport/telegram/Run"

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = int(b.opts.PollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(cfg)
	defer b.api.StopReceivingUpdates()

	lg := log.From(ctx).With("op", op)
	lg.Info("bot_start", "poll_timeout", b.opts.PollTimeout)

	for {
		select {
		case <-ctx.Done():
			lg.Info("bot_stop")
			return nil
		case upd, ok := <-updates:
			if !ok {
				return fmt.Errorf("%s: updates channel closed", op)
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

// HandleUpdate обрабатывает один апдейт. Ошибки не возвращаются: пользователь
// получает локализованный ответ, а результат попадает в лог и метрики.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	start := time.Now()

	var (
		kind   string
		from   *tgbotapi.User
		chatID int64
	)
	switch {
	case upd.Message != nil && upd.Message.From != nil:
		kind, from, chatID = kindMessage, upd.Message.From, upd.Message.Chat.ID
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil:
		kind, from, chatID = kindCallback, upd.CallbackQuery.From, upd.CallbackQuery.Message.Chat.ID
	default:
		return
	}

	ctx = log.With(ctx, "update_id", upd.UpdateID, "chat_id", chatID, "user_id", from.ID)
	if b.opts.UpdateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.opts.UpdateTimeout)
		defer cancel()
	}

	var err error
	defer func() {
		if r := recover(); r != nil {
			log.From(ctx).Error("update_panic", "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
		b.metrics.ObserveUpdate(kind, err, time.Since(start))
	}()

	c, err := b.conversation(ctx, from, chatID)
	if err != nil {
		log.From(ctx).Error("load_user_failed", "err", err)
		b.reply(ctx, chatID, i18n.T(i18n.Detect(from.LanguageCode), i18n.KeyErrorOccurred))
		return
	}

	// Кнопки лимитируются по конкретным действиям (поиск, запрос, правки).
	if kind == kindMessage && !b.allow(ctx, c, ratelimit.ActionMessage) {
		return
	}

	switch kind {
	case kindMessage:
		err = b.handleMessage(ctx, c, upd.Message)
	case kindCallback:
		err = b.handleCallback(ctx, c, upd.CallbackQuery)
	}

	if err != nil {
		log.From(ctx).Warn("update_failed", "kind", kind, "err", err)
	}
}

// conv — контекст одного апдейта: кто пишет и на каком языке отвечать.
type conv struct {
	tgID     int64
	chatID   int64
	username string
	lang     models.Language
	user     *models.User
}

func (c *conv) registered() bool { return c.user != nil }

func (c *conv) t(key string, args ...any) string {
	return i18n.T(c.lang, key, args...)
}

func (b *Bot) conversation(ctx context.Context, from *tgbotapi.User, chatID int64) (*conv, error) {
	c := &conv{
		tgID:     from.ID,
		chatID:   chatID,
		username: from.UserName,
		lang:     i18n.Detect(from.LanguageCode),
	}

	user, err := b.svc.UserByExternalID(ctx, from.ID)
	switch {
	case err == nil:
		c.user = user
		c.lang = user.Language
		b.syncUsername(ctx, c)
	case errors.Is(err, service.ErrNotRegistered):
		if d, ok := b.dialogs.Get(from.ID); ok && d.lang.Valid() {
			c.lang = d.lang
		}
	default:
		return nil, err
	}

	return c, nil
}

// syncUsername подтягивает изменившийся username Telegram в анкету.
func (b *Bot) syncUsername(ctx context.Context, c *conv) {
	if c.username == c.user.Username {
		return
	}

	name := c.username
	user, err := b.svc.UpdateProfile(ctx, c.user.ID, service.ProfileUpdate{Username: &name})
	if err != nil {
		log.From(ctx).Warn("username_sync_failed", "err", err)
		return
	}
	log.From(ctx).Debug("username_synced", "username", redact.Handle(name))
	c.user = user
}

// allow проверяет антиспам-лимит. Ошибка бэкенда лимитера не блокирует пользователя.
func (b *Bot) allow(ctx context.Context, c *conv, action ratelimit.Action) bool {
	if b.limiter == nil {
		return true
	}

	ok, err := b.limiter.Allow(ctx, c.tgID, action)
	if err != nil {
		log.From(ctx).Warn("rate_limit_unavailable", "action", string(action), "err", err)
		return true
	}
	if !ok {
		b.metrics.ObserveRateLimited(string(action))
		log.From(ctx).Info("rate_limited", "action", string(action))
		b.reply(ctx, c.chatID, c.t(i18n.KeyRateLimited))
	}

	return ok
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string, buttons ...[]notify.Button) {
	msg := notify.Message{ChatID: chatID, Text: text, Buttons: buttons}
	if err := b.out.Send(ctx, msg); err != nil {
		log.From(ctx).Warn("reply_failed", "err", err)
	}
}

func (b *Bot) answer(ctx context.Context, callbackID, text string) {
	if err := b.out.Answer(ctx, callbackID, text); err != nil {
		log.From(ctx).Debug("answer_failed", "err", err)
	}
}
