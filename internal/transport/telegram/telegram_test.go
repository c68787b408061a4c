package telegram

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/i18n"
	"github.com/pribylovaa/go-dating-bot/internal/metrics"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/ratelimit"
	"github.com/pribylovaa/go-dating-bot/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func ru(key string, args ...any) string { return i18n.T(models.LanguageRU, key, args...) }

func TestBot_RegistrationFlow(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	b, out := newTestBot(t, svc, nil)
	ctx := context.Background()

	b.HandleUpdate(ctx, textUpdate("/start"))
	require.Contains(t, out.last().Text, ru(i18n.KeyWelcome))
	require.Equal(t, "lang:ru", out.last().Buttons[0][0].Data)

	b.HandleUpdate(ctx, callbackUpdate("lang:ru"))
	require.Equal(t, ru(i18n.KeyRegGender), out.last().Text)

	b.HandleUpdate(ctx, callbackUpdate("gender:male"))
	require.Equal(t, ru(i18n.KeyRegAge, "min", 18, "max", 100), out.last().Text)

	b.HandleUpdate(ctx, textUpdate("abc"))
	require.Equal(t, ru(i18n.KeyInvalidNumber), out.last().Text)

	b.HandleUpdate(ctx, textUpdate("10"))
	require.Equal(t, ru(i18n.KeyOutOfBounds, "min", 18, "max", 100), out.last().Text)

	b.HandleUpdate(ctx, textUpdate("25"))
	b.HandleUpdate(ctx, textUpdate("180"))
	b.HandleUpdate(ctx, textUpdate("75"))
	require.Equal(t, ru(i18n.KeyRegMarital), out.last().Text)

	b.HandleUpdate(ctx, callbackUpdate("marital:single"))
	require.Equal(t, ru(i18n.KeyRegInterests), out.last().Text)

	b.HandleUpdate(ctx, callbackUpdate("interest:music"))
	b.HandleUpdate(ctx, callbackUpdate("interest:sport"))
	require.Equal(t, 2, out.edits)

	b.HandleUpdate(ctx, callbackUpdate("done"))
	require.Equal(t, ru(i18n.KeyRegBio), out.last().Text)

	b.HandleUpdate(ctx, textUpdate("пишите на http://example.com"))
	require.Equal(t, ru(i18n.KeyInvalidBio), out.last().Text)
	require.Empty(t, svc.registered)

	b.HandleUpdate(ctx, callbackUpdate("skip"))
	require.Len(t, svc.registered, 1)

	in := svc.registered[0]
	require.Equal(t, testChat, in.ExternalID)
	require.Equal(t, models.GenderMale, in.Gender)
	require.Equal(t, 25, in.Age)
	require.Equal(t, 180, in.Height)
	require.Equal(t, 75, in.Weight)
	require.Equal(t, models.MaritalSingle, in.MaritalStatus)
	require.Equal(t, []models.Interest{models.InterestMusic, models.InterestSport}, in.Interests)
	require.Empty(t, in.Bio)
	require.Equal(t, models.LanguageRU, in.Language)

	require.Equal(t, ru(i18n.KeyMainMenu), out.last().Text)

	// Повторный /start для зарегистрированного — сразу меню.
	b.HandleUpdate(ctx, textUpdate("/start"))
	require.Equal(t, ru(i18n.KeyMainMenu), out.last().Text)
	require.Len(t, svc.registered, 1)
}

func TestBot_UnregisteredCannotUseMenu(t *testing.T) {
	t.Parallel()

	b, out := newTestBot(t, newFakeService(), nil)

	b.HandleUpdate(context.Background(), callbackUpdate("menu:search"))
	require.Equal(t, ru(i18n.KeyNotRegistered), out.last().Text)

	b.HandleUpdate(context.Background(), textUpdate("привет"))
	require.Equal(t, ru(i18n.KeyNotRegistered), out.last().Text)
}

func TestBot_SearchAndRequest(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	first, second := candidate(27), candidate(29)
	svc.candidates = []models.User{first, second}

	b, out := newTestBot(t, svc, nil)
	ctx := context.Background()

	mark := out.count()
	b.HandleUpdate(ctx, callbackUpdate("menu:search"))
	require.Contains(t, out.textsSince(mark), ru(i18n.KeySearchFound, "count", 2))
	require.Equal(t, "request:"+first.ID.String(), out.last().Buttons[0][0].Data)
	require.Contains(t, out.last().Text, ru(i18n.KeySearchLeft, "count", 2))

	// Кнопка не от текущего кандидата.
	b.HandleUpdate(ctx, callbackUpdate("request:"+second.ID.String()))
	require.Equal(t, ru(i18n.KeySearchExpired), out.last().Text)
	require.Empty(t, svc.requested)

	mark = out.count()
	b.HandleUpdate(ctx, callbackUpdate("request:"+first.ID.String()))
	require.Equal(t, first.ID, svc.requested[0])
	require.Contains(t, out.textsSince(mark), ru(i18n.KeyRequestSent, "remaining", 9))
	require.Equal(t, "request:"+second.ID.String(), out.last().Buttons[0][0].Data)
	require.Contains(t, out.last().Text, ru(i18n.KeySearchLeft, "count", 1))

	svc.requestErr = fmt.Errorf("fake: %w", service.ErrQuotaExceeded)
	b.HandleUpdate(ctx, callbackUpdate("request:"+second.ID.String()))
	require.Equal(t, ru(i18n.KeyDailyLimit, "limit", 10), out.last().Text)

	svc.requestErr = nil
	svc.requestDup = true
	mark = out.count()
	b.HandleUpdate(ctx, callbackUpdate("request:"+second.ID.String()))
	require.Contains(t, out.textsSince(mark), ru(i18n.KeyAlreadyRequested))
	require.Contains(t, out.textsSince(mark), ru(i18n.KeySearchNoMore))

	// Сессия исчерпана.
	b.HandleUpdate(ctx, callbackUpdate("next"))
	require.Equal(t, ru(i18n.KeySearchExpired), out.last().Text)

}

func TestBot_SearchNoResults(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	b, out := newTestBot(t, svc, nil)

	b.HandleUpdate(context.Background(), callbackUpdate("menu:search"))
	require.Equal(t, ru(i18n.KeySearchNoResults), out.last().Text)
}

func TestBot_InboxAcceptAndAlreadyHandled(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	me := svc.add(registeredUser())
	from := svc.add(candidate(26))
	req := models.AccessRequest{ID: uuid.New(), FromUserID: from.ID, ToUserID: me.ID, Status: models.RequestPending}
	svc.pending = []models.AccessRequest{req}

	b, out := newTestBot(t, svc, nil)
	ctx := context.Background()

	b.HandleUpdate(ctx, callbackUpdate("menu:requests"))
	require.Contains(t, out.last().Text, ru(i18n.KeyRequestsFrom, "position", 1, "total", 1))
	require.Equal(t, "accept:"+req.ID.String(), out.last().Buttons[0][0].Data)

	mark := out.count()
	b.HandleUpdate(ctx, callbackUpdate("accept:"+req.ID.String()))
	require.Equal(t, req.ID, svc.accepted[0])
	require.Equal(t, []string{ru(i18n.KeyRequestAccepted), ru(i18n.KeyRequestsDone)}, out.textsSince(mark))

	// Повторное нажатие из уведомления после обработки.
	svc.resolveErr = fmt.Errorf("fake: %w", service.ErrInvalidState)
	b.HandleUpdate(ctx, callbackUpdate("reject:"+req.ID.String()))
	require.Equal(t, ru(i18n.KeyAlreadyHandled), out.last().Text)
	require.Empty(t, svc.rejected)
}

func TestBot_InboxEmpty(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	b, out := newTestBot(t, svc, nil)

	b.HandleUpdate(context.Background(), callbackUpdate("menu:requests"))
	require.Equal(t, ru(i18n.KeyRequestsEmpty), out.last().Text)
}

func TestBot_Contacts(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	b, out := newTestBot(t, svc, nil)
	ctx := context.Background()

	b.HandleUpdate(ctx, callbackUpdate("menu:contacts"))
	require.Equal(t, ru(i18n.KeyContactsEmpty), out.last().Text)

	withHandle := candidate(28)
	withHandle.Username = "alice"
	svc.contacts = []models.User{withHandle, candidate(31)}

	b.HandleUpdate(ctx, callbackUpdate("menu:contacts"))
	text := out.last().Text
	require.Contains(t, text, ru(i18n.KeyContactsTitle))
	require.Contains(t, text, "@alice")
	require.Contains(t, text, ru(i18n.KeyNotifyNoUsername))
}

func TestBot_SettingsRange(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	b, out := newTestBot(t, svc, nil)
	ctx := context.Background()

	b.HandleUpdate(ctx, callbackUpdate("setting:age"))
	require.Equal(t, ru(i18n.KeySettingsEnterRange, "min", 18, "max", 100), out.last().Text)

	b.HandleUpdate(ctx, textUpdate("30-20"))
	require.Equal(t, ru(i18n.KeyInvalidRange, "min", 18, "max", 100), out.last().Text)

	b.HandleUpdate(ctx, textUpdate("10-20"))
	require.Equal(t, ru(i18n.KeyOutOfBounds, "min", 18, "max", 100), out.last().Text)
	require.Empty(t, svc.settingsUpdates)

	b.HandleUpdate(ctx, textUpdate("25 – 35"))
	require.Len(t, svc.settingsUpdates, 1)
	require.Equal(t, models.Range{Min: 25, Max: 35}, *svc.settingsUpdates[0].Age)
	require.Contains(t, out.last().Text, ru(i18n.KeySettingsAge, "min", 25, "max", 35))
}

func TestBot_SettingsMaritalMultiSelect(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	b, _ := newTestBot(t, svc, nil)
	ctx := context.Background()

	b.HandleUpdate(ctx, callbackUpdate("setting:marital"))
	b.HandleUpdate(ctx, callbackUpdate("smarital:single"))
	b.HandleUpdate(ctx, callbackUpdate("smarital:divorced"))
	b.HandleUpdate(ctx, callbackUpdate("smarital:single"))
	b.HandleUpdate(ctx, callbackUpdate("done"))

	require.Len(t, svc.settingsUpdates, 1)
	require.Equal(t, []models.MaritalStatus{models.MaritalDivorced}, *svc.settingsUpdates[0].MaritalPreference)
}

func TestBot_EditProfileNumber(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	b, out := newTestBot(t, svc, nil)
	ctx := context.Background()

	b.HandleUpdate(ctx, callbackUpdate("edit:age"))
	b.HandleUpdate(ctx, textUpdate("31"))
	require.Equal(t, 31, *svc.profileUpdates[0].Age)
	require.Contains(t, out.textsSince(0), ru(i18n.KeyProfileSaved))

	// После сохранения диалог закрыт: текст ведёт в меню.
	b.HandleUpdate(ctx, textUpdate("32"))
	require.Len(t, svc.profileUpdates, 1)
	require.Equal(t, ru(i18n.KeyMainMenu), out.last().Text)
}

func TestBot_DeactivateAndLanguage(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	me := svc.add(registeredUser())
	b, out := newTestBot(t, svc, nil)
	ctx := context.Background()

	mark := out.count()
	b.HandleUpdate(ctx, callbackUpdate("menu:deactivate"))
	require.False(t, svc.byID[me.ID].IsActive)
	require.Contains(t, out.textsSince(mark), ru(i18n.KeyDeactivated))
	// В меню теперь кнопка «показать анкету».
	require.Equal(t, "menu:reactivate", out.last().Buttons[3][1].Data)

	mark = out.count()
	b.HandleUpdate(ctx, callbackUpdate("lang:uz"))
	require.Equal(t, models.LanguageUZ, svc.byID[me.ID].Language)
	require.Contains(t, out.textsSince(mark), i18n.T(models.LanguageUZ, i18n.KeyLanguageChanged))
}

func TestBot_UsernameSync(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	u := registeredUser()
	u.Username = "old"
	me := svc.add(u)
	b, _ := newTestBot(t, svc, nil)

	upd := textUpdate("/menu")
	upd.Message.From.UserName = "new_handle"
	b.HandleUpdate(context.Background(), upd)

	require.Equal(t, "new_handle", svc.byID[me.ID].Username)
}

func TestBot_RateLimited(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	svc.candidates = []models.User{candidate(25)}

	reg := prometheus.NewRegistry()
	limiter := denyLimiter{deny: map[ratelimit.Action]bool{
		ratelimit.ActionMessage: true,
		ratelimit.ActionSearch:  true,
	}}
	out := &fakeMessenger{}
	b := New(nil, out, svc, limiter, metrics.New(reg), Options{DailyLimit: 10})
	ctx := context.Background()

	b.HandleUpdate(ctx, textUpdate("/menu"))
	require.Equal(t, ru(i18n.KeyRateLimited), out.last().Text)

	b.HandleUpdate(ctx, callbackUpdate("menu:search"))
	require.Equal(t, ru(i18n.KeyRateLimited), out.last().Text)

	require.Equal(t, float64(2), counterSum(t, reg, "datingbot_rate_limited_total"))
}

// counterSum суммирует счётчик по всем лейблам.
func counterSum(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	var sum float64
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
	}

	return sum
}

func TestBot_MalformedCallback(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.add(registeredUser())
	b, out := newTestBot(t, svc, nil)

	b.HandleUpdate(context.Background(), callbackUpdate(""))
	require.Zero(t, out.count())
	require.Equal(t, 1, out.answers)
}
