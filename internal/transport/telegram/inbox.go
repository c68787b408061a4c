package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/service"
	"github.com/pribylovaa/go-dating-bot/internal/session"
)

// showInbox берёт снимок ожидающих запросов (старые первыми) и показывает первый.
func (b *Bot) showInbox(ctx context.Context, c *conv) error {
	pending, err := b.svc.PendingInbox(ctx, c.user.ID)
	if err != nil {
		b.replyError(ctx, c, err)
		return err
	}

	if len(pending) == 0 {
		b.inboxes.Delete(c.tgID)
		b.reply(ctx, c.chatID, c.t(i18n.KeyRequestsEmpty), backRow(c))
		return nil
	}

	in := &session.Inbox{Requests: pending}
	b.inboxes.Put(c.tgID, in)

	return b.showRequest(ctx, c, in)
}

// showRequest показывает текущий запрос; запросы от недоступных анкет пропускаются.
func (b *Bot) showRequest(ctx context.Context, c *conv, in *session.Inbox) error {
	for {
		req, ok := in.Current()
		if !ok {
			b.inboxes.Delete(c.tgID)
			b.reply(ctx, c.chatID, c.t(i18n.KeyRequestsDone), backRow(c))
			return nil
		}

		from, err := b.svc.UserByID(ctx, req.FromUserID)
		if err != nil {
			log.From(ctx).Warn("inbox_sender_unavailable", "request_id", req.ID.String(), "err", err)
			in.Advance()
			continue
		}

		text := strings.Join([]string{
			c.t(i18n.KeyRequestsFrom, "position", in.Position(), "total", in.Total()),
			notify.ProfileCard(c.lang, *from),
		}, "\n\n")
		b.reply(ctx, c.chatID, text, inboxKeyboard(c, req)...)

		return nil
	}
}

func (b *Bot) showNextRequest(ctx context.Context, c *conv) error {
	in, ok := b.inboxes.Get(c.tgID)
	if !ok {
		return b.showInbox(ctx, c)
	}

	in.Advance()

	return b.showRequest(ctx, c, in)
}

// onResolve принимает или отклоняет запрос. Кнопки могут прийти и из
// уведомления, и из просмотра входящих; курсор сдвигается, только если
// решён именно текущий запрос сессии.
func (b *Bot) onResolve(ctx context.Context, c *conv, arg string, accept bool) error {
	id, ok := parseID(arg)
	if !ok {
		b.reply(ctx, c.chatID, c.t(i18n.KeyInvalidValue))
		return nil
	}

	var err error
	if accept {
		_, err = b.svc.Accept(ctx, id, c.user.ID)
	} else {
		_, err = b.svc.Reject(ctx, id, c.user.ID)
	}

	switch {
	case errors.Is(err, service.ErrInvalidState):
		b.metrics.ObserveRequest(outcomeAlreadyHandled)
		b.replyError(ctx, c, err)
	case err != nil:
		b.replyError(ctx, c, err)
		return err
	case accept:
		b.metrics.ObserveRequest(outcomeAccepted)
		b.reply(ctx, c.chatID, c.t(i18n.KeyRequestAccepted))
	default:
		b.metrics.ObserveRequest(outcomeRejected)
		b.reply(ctx, c.chatID, c.t(i18n.KeyRequestRejected))
	}

	in, ok := b.inboxes.Get(c.tgID)
	if !ok {
		return nil
	}
	if cur, has := in.Current(); has && cur.ID == id {
		in.Advance()
		return b.showRequest(ctx, c, in)
	}

	return nil
}
