package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	err      error
	updates  chan tgbotapi.Update
	stopped  bool
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() { f.stopped = true }

func TestSender_Send(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	s := NewSender(api, "")

	err := s.Send(context.Background(), notify.Message{
		ChatID:  7,
		Text:    "hello",
		Buttons: [][]notify.Button{{{Text: "A", Data: "accept:1"}, {Text: "R", Data: "reject:1"}}},
	})
	require.NoError(t, err)
	require.Len(t, api.sent, 1)

	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Equal(t, int64(7), msg.ChatID)
	require.Equal(t, "hello", msg.Text)

	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard[0], 2)
	require.Equal(t, "reject:1", *kb.InlineKeyboard[0][1].CallbackData)

	// Без кнопок разметка не ставится.
	require.NoError(t, s.Send(context.Background(), notify.Message{ChatID: 7, Text: "plain"}))
	require.Nil(t, api.sent[1].(tgbotapi.MessageConfig).ReplyMarkup)
}

func TestSender_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("Forbidden: bot was blocked by the user")
	s := NewSender(&fakeAPI{err: boom}, "")

	require.ErrorIs(t, s.Send(context.Background(), notify.Message{ChatID: 1, Text: "x"}), boom)
	require.ErrorIs(t, s.Answer(context.Background(), "cb", ""), boom)
	require.ErrorIs(t, s.EditButtons(context.Background(), 1, 2, nil), boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewSender(&fakeAPI{}, "").Send(ctx, notify.Message{ChatID: 1}), context.Canceled)
}

func TestSender_HidesTokenInErrors(t *testing.T) {
	t.Parallel()

	const token = "123:SECRET"
	boom := errors.New(`Post "https://api.telegram.org/bot123:SECRET/sendMessage": i/o timeout`)
	s := NewSender(&fakeAPI{err: boom}, token)

	err := s.Send(context.Background(), notify.Message{ChatID: 1, Text: "x"})
	require.Error(t, err)
	require.NotContains(t, err.Error(), "SECRET")
	require.Contains(t, err.Error(), "bot[REDACTED]/sendMessage")
	require.NotErrorIs(t, err, boom)

	plain := errors.New("Bad Request: message is not modified")
	s = NewSender(&fakeAPI{err: plain}, token)
	require.ErrorIs(t, s.EditButtons(context.Background(), 1, 2, nil), plain)
}

func TestBot_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{updates: make(chan tgbotapi.Update, 1)}
	svc := newFakeService()
	svc.add(registeredUser())
	out := &fakeMessenger{}
	b := New(api, out, svc, nil, nil, Options{})

	api.updates <- textUpdate("/menu")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	require.Eventually(t, func() bool { return out.count() == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	require.True(t, api.stopped)
}

func TestBot_RunFailsOnClosedChannel(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{updates: make(chan tgbotapi.Update)}
	close(api.updates)
	b := New(api, &fakeMessenger{}, newFakeService(), nil, nil, Options{})

	require.Error(t, b.Run(context.Background()))
}

func TestParseRangeAndNumber(t *testing.T) {
	t.Parallel()

	b := models.DefaultBounds()

	r, err := parseRange("20-30", b.Age)
	require.NoError(t, err)
	require.Equal(t, models.Range{Min: 20, Max: 30}, r)

	r, err = parseRange(" 18 — 100 ", b.Age)
	require.NoError(t, err)
	require.Equal(t, b.Age, r)

	_, err = parseRange("20", b.Age)
	require.ErrorIs(t, err, errBadRange)
	_, err = parseRange("a-b", b.Age)
	require.ErrorIs(t, err, errBadRange)
	_, err = parseRange("17-30", b.Age)
	require.ErrorIs(t, err, errOutOfRange)

	v, err := parseNumber(" 42 ", b.Age)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	_, err = parseNumber("4.2", b.Age)
	require.ErrorIs(t, err, errNotNumber)
	_, err = parseNumber("230", b.Height)
	require.ErrorIs(t, err, errOutOfRange)
}

func TestParseEnumAndToggle(t *testing.T) {
	t.Parallel()

	g, ok := parseEnum("female", genders)
	require.True(t, ok)
	require.Equal(t, models.GenderFemale, g)

	_, ok = parseEnum("unspecified", genders)
	require.False(t, ok)

	set := toggle([]models.Interest{models.InterestArt}, models.InterestYoga)
	require.Equal(t, []models.Interest{models.InterestArt, models.InterestYoga}, set)
	set = toggle(set, models.InterestArt)
	require.Equal(t, []models.Interest{models.InterestYoga}, set)
}
