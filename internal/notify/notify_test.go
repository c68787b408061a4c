package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/metrics"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu       sync.Mutex
	sent     []Message
	err      error
	deadline bool
}

func (f *fakeSender) Send(ctx context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)

	return nil
}

func testUsers() (from, to models.User) {
	from = models.User{
		ID:            uuid.New(),
		ExternalID:    100,
		Username:      "alice",
		Gender:        models.GenderFemale,
		Age:           27,
		Height:        168,
		Weight:        55,
		MaritalStatus: models.MaritalSingle,
		Interests:     []models.Interest{models.InterestMusic, models.InterestTravel},
		Bio:           "Люблю горы",
		Language:      models.LanguageRU,
	}
	to = models.User{
		ID:            uuid.New(),
		ExternalID:    200,
		Username:      "bob",
		Gender:        models.GenderMale,
		Age:           30,
		Height:        180,
		Weight:        75,
		MaritalStatus: models.MaritalSingle,
		Language:      models.LanguageUZ,
	}
	return from, to
}

func TestNotifyNewRequest(t *testing.T) {
	t.Parallel()

	snd := &fakeSender{}
	reg := prometheus.NewRegistry()
	d := New(snd, metrics.New(reg), time.Second)

	from, to := testUsers()
	req := models.AccessRequest{ID: uuid.New(), FromUserID: from.ID, ToUserID: to.ID, Status: models.RequestPending}

	require.NoError(t, d.NotifyNewRequest(context.Background(), req, from, to))
	require.Len(t, snd.sent, 1)
	require.True(t, snd.deadline)

	msg := snd.sent[0]
	require.Equal(t, to.ExternalID, msg.ChatID)
	// Карточка автора, но без его username.
	require.Contains(t, msg.Text, "27")
	require.NotContains(t, msg.Text, "alice")

	require.Len(t, msg.Buttons, 1)
	require.Len(t, msg.Buttons[0], 2)
	require.Equal(t, "accept:"+req.ID.String(), msg.Buttons[0][0].Data)
	require.Equal(t, "reject:"+req.ID.String(), msg.Buttons[0][1].Data)
}

func TestNotifyAccessGranted_Handle(t *testing.T) {
	t.Parallel()

	from, to := testUsers()
	req := models.AccessRequest{ID: uuid.New()}

	snd := &fakeSender{}
	d := New(snd, nil, 0)

	require.NoError(t, d.NotifyAccessGranted(context.Background(), req, from, to))
	require.Equal(t, from.ExternalID, snd.sent[0].ChatID)
	require.Contains(t, snd.sent[0].Text, "@bob")
	require.False(t, snd.deadline)

	to.Username = ""
	require.NoError(t, d.NotifyAccessGranted(context.Background(), req, from, to))
	require.NotContains(t, snd.sent[1].Text, "@")
	require.Contains(t, snd.sent[1].Text, "username")
}

func TestDeliveryFailure_CountedAndReturned(t *testing.T) {
	t.Parallel()

	boom := errors.New("bot was blocked by the user")
	snd := &fakeSender{err: boom}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	d := New(snd, m, time.Second)

	from, to := testUsers()
	err := d.NotifyNewRequest(context.Background(), models.AccessRequest{ID: uuid.New()}, from, to)
	require.ErrorIs(t, err, boom)

	err = d.SendDailySummary(context.Background(), to, models.DailyStats{IncomingPending: 1})
	require.ErrorIs(t, err, boom)

	n, err := testutil.GatherAndCount(reg, "datingbot_notifications_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestSendDailySummary(t *testing.T) {
	t.Parallel()

	snd := &fakeSender{}
	d := New(snd, nil, 0)

	_, to := testUsers()
	to.Language = models.LanguageRU
	require.NoError(t, d.SendDailySummary(context.Background(), to, models.DailyStats{
		IncomingPending:  2,
		IncomingAccepted: 1,
		Sent:             4,
	}))

	text := snd.sent[0].Text
	require.Contains(t, text, "2")
	require.Contains(t, text, "4")
	require.False(t, strings.Contains(text, "{"), "placeholders must be substituted")
}

func TestProfileCard(t *testing.T) {
	t.Parallel()

	from, _ := testUsers()

	card := ProfileCard(models.LanguageRU, from)
	require.Contains(t, card, "168")
	require.Contains(t, card, "Люблю горы")
	require.Contains(t, card, "Музыка")

	from.Bio = ""
	from.Interests = nil
	card = ProfileCard(models.LanguageRU, from)
	require.NotContains(t, card, "Интересы")
	require.False(t, strings.HasSuffix(card, "\n"))
}
