package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus — состояние запроса доступа.
// Переходы: pending -> accepted, pending -> rejected; accepted/rejected терминальны.
type RequestStatus int8

const (
	RequestStatusUnspecified RequestStatus = iota
	RequestPending
	RequestAccepted
	RequestRejected
)

func (s RequestStatus) String() string {
	switch s {
	case RequestPending:
		return "pending"
	case RequestAccepted:
		return "accepted"
	case RequestRejected:
		return "rejected"
	default:
		return "unspecified"
	}
}

// Terminal сообщает, что из состояния больше нет переходов.
func (s RequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestRejected
}

// CanTransition проверяет допустимость перехода s -> to.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return s == RequestPending && to.Terminal()
}

// AccessRequest — направленное ребро «from просит контакт у to».
// На упорядоченную пару (FromUserID, ToUserID) существует не более одной записи.
type AccessRequest struct {
	ID         uuid.UUID
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
	Status     RequestStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// AllowedContact — неориентированная пара пользователей, видящих контакты друг друга.
// Создаётся ровно один раз при принятии запроса RequestID.
type AllowedContact struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	User1ID   uuid.UUID
	User2ID   uuid.UUID
	CreatedAt time.Time
}

// DailyStats — активность пользователя с начала суток.
type DailyStats struct {
	IncomingPending  int
	IncomingAccepted int
	Sent             int
}

// Empty сообщает об отсутствии активности.
func (d DailyStats) Empty() bool {
	return d.IncomingPending == 0 && d.IncomingAccepted == 0 && d.Sent == 0
}
