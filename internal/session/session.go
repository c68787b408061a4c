// session — процессные (не персистентные) сессии диалога с пользователем.
//
// Сессия поиска хранит снимок кандидатов и курсор; сессия входящих — снимок
// ожидающих запросов и курсор. Рестарт процесса сбрасывает сессии, пользователь
// просто начинает поиск заново.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-dating-bot/internal/models"
)

// Search — курсор по списку кандидатов одного поиска.
type Search struct {
	UserID     uuid.UUID
	Candidates []models.User
	Index      int
	StartedAt  time.Time
}

// NewSearch создаёт сессию поиска, указывающую на первого кандидата.
func NewSearch(userID uuid.UUID, candidates []models.User, now time.Time) *Search {
	return &Search{
		UserID:     userID,
		Candidates: candidates,
		StartedAt:  now,
	}
}

// Current возвращает текущего кандидата; ok=false, если список исчерпан.
func (s *Search) Current() (models.User, bool) {
	if s == nil || s.Index < 0 || s.Index >= len(s.Candidates) {
		return models.User{}, false
	}

	return s.Candidates[s.Index], true
}

// Advance сдвигает курсор и возвращает следующего кандидата.
func (s *Search) Advance() (models.User, bool) {
	if s == nil {
		return models.User{}, false
	}
	if s.Index < len(s.Candidates) {
		s.Index++
	}

	return s.Current()
}

// Remaining — сколько кандидатов осталось, включая текущего.
func (s *Search) Remaining() int {
	if s == nil || s.Index >= len(s.Candidates) {
		return 0
	}

	return len(s.Candidates) - s.Index
}

// Inbox — курсор по ожидающим запросам (старые первыми).
type Inbox struct {
	Requests []models.AccessRequest
	Index    int
}

// Current возвращает текущий запрос.
func (i *Inbox) Current() (models.AccessRequest, bool) {
	if i == nil || i.Index < 0 || i.Index >= len(i.Requests) {
		return models.AccessRequest{}, false
	}

	return i.Requests[i.Index], true
}

// Advance сдвигает курсор на следующий запрос.
func (i *Inbox) Advance() (models.AccessRequest, bool) {
	if i == nil {
		return models.AccessRequest{}, false
	}
	if i.Index < len(i.Requests) {
		i.Index++
	}

	return i.Current()
}

// Position — номер текущего запроса, начиная с 1.
func (i *Inbox) Position() int { return i.Index + 1 }

// Total — размер снимка.
func (i *Inbox) Total() int { return len(i.Requests) }
