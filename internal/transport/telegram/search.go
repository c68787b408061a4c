package telegram

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/pribylovaa/go-dating-bot/internal/pkg/log"
	"github.com/pribylovaa/go-dating-bot/internal/ratelimit"
	"github.com/pribylovaa/go-dating-bot/internal/service"
	"github.com/pribylovaa/go-dating-bot/internal/session"
)

// Исходы запроса доступа (лейбл outcome в метриках).
const (
	outcomeCreated        = "created"
	outcomeDuplicate      = "duplicate"
	outcomeQuotaExceeded  = "quota_exceeded"
	outcomeAccepted       = "accepted"
	outcomeRejected       = "rejected"
	outcomeAlreadyHandled = "already_handled"
)

// startSearch строит снимок кандидатов и показывает первого.
func (b *Bot) startSearch(ctx context.Context, c *conv) error {
	if !b.allow(ctx, c, ratelimit.ActionSearch) {
		return nil
	}

	candidates, err := b.svc.FindCandidates(ctx, c.user.ID, nil)
	if err != nil {
		b.replyError(ctx, c, err)
		return err
	}

	if len(candidates) == 0 {
		b.searches.Delete(c.tgID)
		b.reply(ctx, c.chatID, c.t(i18n.KeySearchNoResults), backRow(c))
		return nil
	}

	s := session.NewSearch(c.user.ID, candidates, b.now())
	b.searches.Put(c.tgID, s)

	log.From(ctx).Debug("search_started", "candidates", len(candidates))
	b.reply(ctx, c.chatID, c.t(i18n.KeySearchFound, "count", len(candidates)))

	return b.showCandidate(ctx, c, s)
}

func (b *Bot) showCandidate(ctx context.Context, c *conv, s *session.Search) error {
	u, ok := s.Current()
	if !ok {
		b.searches.Delete(c.tgID)
		b.reply(ctx, c.chatID, c.t(i18n.KeySearchNoMore), backRow(c))
		return nil
	}

	text := notify.ProfileCard(c.lang, u) + "\n\n" + c.t(i18n.KeySearchLeft, "count", s.Remaining())
	b.reply(ctx, c.chatID, text, candidateKeyboard(c, u)...)

	return nil
}

func (b *Bot) showNextCandidate(ctx context.Context, c *conv) error {
	s, ok := b.searches.Get(c.tgID)
	if !ok {
		b.reply(ctx, c.chatID, c.t(i18n.KeySearchExpired), backRow(c))
		return nil
	}

	s.Advance()

	return b.showCandidate(ctx, c, s)
}

// onRequestAccess отправляет запрос текущему кандидату сессии.
// Кнопка от устаревшего снимка (другой кандидат) не принимается.
func (b *Bot) onRequestAccess(ctx context.Context, c *conv, arg string) error {
	s, ok := b.searches.Get(c.tgID)
	current, hasCurrent := s.Current()
	if !ok || !hasCurrent || current.ID.String() != arg {
		b.reply(ctx, c.chatID, c.t(i18n.KeySearchExpired), backRow(c))
		return nil
	}

	if !b.allow(ctx, c, ratelimit.ActionRequest) {
		return nil
	}

	res, err := b.svc.RequestAccess(ctx, c.user.ID, current.ID)
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		b.metrics.ObserveRequest(outcomeQuotaExceeded)
		b.replyError(ctx, c, err)
		return nil
	case errors.Is(err, service.ErrNotFound):
		b.reply(ctx, c.chatID, c.t(i18n.KeyCandidateGone))
		return b.showNextCandidate(ctx, c)
	case err != nil:
		b.replyError(ctx, c, err)
		return err
	}

	if res.AlreadyExists {
		b.metrics.ObserveRequest(outcomeDuplicate)
		b.reply(ctx, c.chatID, c.t(i18n.KeyAlreadyRequested))
		return b.showNextCandidate(ctx, c)
	}

	b.metrics.ObserveRequest(outcomeCreated)

	remaining, err := b.svc.RemainingRequests(ctx, c.user.ID)
	if err != nil {
		log.From(ctx).Warn("remaining_requests_failed", "err", err)
		remaining = 0
	}
	b.reply(ctx, c.chatID, c.t(i18n.KeyRequestSent, "remaining", remaining))

	return b.showNextCandidate(ctx, c)
}

func parseID(arg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(arg)
	return id, err == nil
}
