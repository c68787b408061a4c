package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/models"
	"github.com/pribylovaa/go-dating-bot/internal/notify"
	"github.com/pribylovaa/go-dating-bot/internal/ratelimit"
	"github.com/pribylovaa/go-dating-bot/internal/service"
)

// fakeMessenger запоминает всё, что бот отправил.
type fakeMessenger struct {
	mu      sync.Mutex
	sent    []notify.Message
	edits   int
	answers int
}

func (f *fakeMessenger) Send(_ context.Context, msg notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMessenger) EditButtons(context.Context, int64, int, [][]notify.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits++
	return nil
}

func (f *fakeMessenger) Answer(context.Context, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers++
	return nil
}

func (f *fakeMessenger) last() notify.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return notify.Message{}
	}
	return f.sent[len(f.sent)-1]
}

// texts возвращает тексты всех сообщений, отправленных после отметки from.
func (f *fakeMessenger) textsSince(from int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, m := range f.sent[from:] {
		out = append(out, m.Text)
	}
	return out
}

func (f *fakeMessenger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// fakeService — in-memory реализация Service для сценариев диалога.
type fakeService struct {
	users      map[int64]*models.User
	byID       map[uuid.UUID]*models.User
	settings   models.SearchSettings
	candidates []models.User
	pending    []models.AccessRequest
	contacts   []models.User
	remaining  int

	requestErr error
	requestDup bool
	resolveErr error

	registered      []service.RegisterInput
	profileUpdates  []service.ProfileUpdate
	settingsUpdates []service.SettingsUpdate
	requested       []uuid.UUID
	accepted        []uuid.UUID
	rejected        []uuid.UUID
}

func newFakeService() *fakeService {
	return &fakeService{
		users:     make(map[int64]*models.User),
		byID:      make(map[uuid.UUID]*models.User),
		settings:  models.DefaultSearchSettings(uuid.Nil, models.DefaultBounds()),
		remaining: 9,
	}
}

func (f *fakeService) add(u models.User) *models.User {
	cp := u
	f.users[u.ExternalID] = &cp
	f.byID[u.ID] = &cp
	return &cp
}

func (f *fakeService) Bounds() models.Bounds { return models.DefaultBounds() }

func (f *fakeService) Register(_ context.Context, in service.RegisterInput) (*models.User, error) {
	if strings.Contains(in.Bio, "http") {
		return nil, fmt.Errorf("fake/Register: %w", &service.ValidationError{Field: "bio", Reason: "links"})
	}
	if _, ok := f.users[in.ExternalID]; ok {
		return nil, fmt.Errorf("fake/Register: %w", service.ErrAlreadyExists)
	}

	f.registered = append(f.registered, in)

	return f.add(models.User{
		ID:            uuid.New(),
		ExternalID:    in.ExternalID,
		Username:      in.Username,
		Gender:        in.Gender,
		Age:           in.Age,
		Height:        in.Height,
		Weight:        in.Weight,
		MaritalStatus: in.MaritalStatus,
		Interests:     in.Interests,
		Bio:           in.Bio,
		Language:      in.Language,
		IsActive:      true,
	}), nil
}

func (f *fakeService) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("fake/UserByID: %w", service.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeService) UserByExternalID(_ context.Context, externalID int64) (*models.User, error) {
	u, ok := f.users[externalID]
	if !ok {
		return nil, fmt.Errorf("fake/UserByExternalID: %w", service.ErrNotRegistered)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeService) UpdateProfile(_ context.Context, userID uuid.UUID, in service.ProfileUpdate) (*models.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, fmt.Errorf("fake/UpdateProfile: %w", service.ErrNotFound)
	}
	f.profileUpdates = append(f.profileUpdates, in)

	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Age != nil {
		u.Age = *in.Age
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Language != nil {
		u.Language = *in.Language
	}
	if in.Interests != nil {
		u.Interests = *in.Interests
	}

	cp := *u
	return &cp, nil
}

func (f *fakeService) SetActive(_ context.Context, userID uuid.UUID, active bool) (*models.User, error) {
	u := f.byID[userID]
	u.IsActive = active
	cp := *u
	return &cp, nil
}

func (f *fakeService) SearchSettings(context.Context, uuid.UUID) (*models.SearchSettings, error) {
	st := f.settings
	return &st, nil
}

func (f *fakeService) UpdateSearchSettings(_ context.Context, _ uuid.UUID, in service.SettingsUpdate) (*models.SearchSettings, error) {
	f.settingsUpdates = append(f.settingsUpdates, in)
	if in.Age != nil {
		f.settings.Age = *in.Age
	}
	if in.GenderPreference != nil {
		f.settings.GenderPreference = *in.GenderPreference
	}
	if in.MaritalPreference != nil {
		f.settings.MaritalPreference = *in.MaritalPreference
	}
	st := f.settings
	return &st, nil
}

func (f *fakeService) Contacts(context.Context, uuid.UUID) ([]models.User, error) {
	return f.contacts, nil
}

func (f *fakeService) FindCandidates(context.Context, uuid.UUID, *models.SearchSettings) ([]models.User, error) {
	return f.candidates, nil
}

func (f *fakeService) RequestAccess(_ context.Context, fromID, toID uuid.UUID) (service.CreateRequestResult, error) {
	if f.requestErr != nil {
		return service.CreateRequestResult{}, f.requestErr
	}
	f.requested = append(f.requested, toID)

	req := &models.AccessRequest{ID: uuid.New(), FromUserID: fromID, ToUserID: toID, Status: models.RequestPending}
	return service.CreateRequestResult{Request: req, AlreadyExists: f.requestDup}, nil
}

func (f *fakeService) RemainingRequests(context.Context, uuid.UUID) (int, error) {
	return f.remaining, nil
}

func (f *fakeService) Accept(_ context.Context, requestID, _ uuid.UUID) (*models.AccessRequest, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	f.accepted = append(f.accepted, requestID)
	return &models.AccessRequest{ID: requestID, Status: models.RequestAccepted}, nil
}

func (f *fakeService) Reject(_ context.Context, requestID, _ uuid.UUID) (*models.AccessRequest, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	f.rejected = append(f.rejected, requestID)
	return &models.AccessRequest{ID: requestID, Status: models.RequestRejected}, nil
}

func (f *fakeService) PendingInbox(context.Context, uuid.UUID) ([]models.AccessRequest, error) {
	return f.pending, nil
}

// denyLimiter отклоняет перечисленные действия.
type denyLimiter struct {
	deny map[ratelimit.Action]bool
}

func (l denyLimiter) Allow(_ context.Context, _ int64, action ratelimit.Action) (bool, error) {
	return !l.deny[action], nil
}

func (denyLimiter) Close() error { return nil }

const testChat int64 = 4242

func newTestBot(t *testing.T, svc *fakeService, limiter ratelimit.Limiter) (*Bot, *fakeMessenger) {
	t.Helper()

	out := &fakeMessenger{}
	b := New(nil, out, svc, limiter, nil, Options{DailyLimit: 10})

	return b, out
}

func textUpdate(text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: testChat, LanguageCode: "ru"},
		Chat:      &tgbotapi.Chat{ID: testChat},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	}

	return tgbotapi.Update{UpdateID: 1, Message: msg}
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: testChat, LanguageCode: "ru"},
			Message: &tgbotapi.Message{
				MessageID: 5,
				Chat:      &tgbotapi.Chat{ID: testChat},
			},
			Data: data,
		},
	}
}

func registeredUser() models.User {
	return models.User{
		ID:            uuid.New(),
		ExternalID:    testChat,
		Gender:        models.GenderMale,
		Age:           30,
		Height:        180,
		Weight:        75,
		MaritalStatus: models.MaritalSingle,
		Language:      models.LanguageRU,
		IsActive:      true,
	}
}

func candidate(age int) models.User {
	return models.User{
		ID:            uuid.New(),
		ExternalID:    int64(1000 + age),
		Gender:        models.GenderFemale,
		Age:           age,
		Height:        165,
		Weight:        55,
		MaritalStatus: models.MaritalSingle,
		Language:      models.LanguageRU,
		IsActive:      true,
	}
}
