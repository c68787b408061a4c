package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxSessions — предел числа сессий одного вида; при переполнении
// вытесняются давно не использованные.
const DefaultMaxSessions = 10000

// Store — потокобезопасное хранилище сессий по Telegram-идентификатору поверх
// expirable LRU. Сессия живёт ttl с последнего обращения, устаревшие записи
// вычищаются самим LRU. ttl <= 0 отключает устаревание, size <= 0 — предел размера.
type Store[T any] struct {
	lru *expirable.LRU[int64, T]
}

// NewStore создаёт пустое хранилище.
func NewStore[T any](size int, ttl time.Duration) *Store[T] {
	if size < 0 {
		size = 0
	}

	return &Store[T]{lru: expirable.NewLRU[int64, T](size, nil, ttl)}
}

// Get возвращает сессию и продлевает её жизнь.
func (s *Store[T]) Get(id int64) (T, bool) {
	v, ok := s.lru.Get(id)
	if ok {
		s.lru.Add(id, v)
	}

	return v, ok
}

// Put сохраняет (или заменяет) сессию.
func (s *Store[T]) Put(id int64, v T) {
	s.lru.Add(id, v)
}

// Delete удаляет сессию.
func (s *Store[T]) Delete(id int64) {
	s.lru.Remove(id)
}

// Len — число хранимых сессий.
func (s *Store[T]) Len() int {
	return s.lru.Len()
}
