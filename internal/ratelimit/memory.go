package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Memory — in-process реализация Limiter.
type Memory struct {
	mu    sync.Mutex
	rules map[Action]Rule
	hits  map[string][]time.Time
	now   func() time.Time
}

// NewMemory создаёт ограничитель в памяти процесса.
func NewMemory(rules map[Action]Rule) *Memory {
	return &Memory{
		rules: rules,
		hits:  make(map[string][]time.Time),
		now:   time.Now,
	}
}

func (m *Memory) Allow(_ context.Context, userID int64, action Action) (bool, error) {
	rule, ok := m.rules[action]
	if !ok {
		return true, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	k := key(userID, action)

	// Отбрасываем попадания вне окна; слайс упорядочен по времени.
	hits := m.hits[k]
	cut := 0
	for cut < len(hits) && !hits[cut].After(now.Add(-rule.Window)) {
		cut++
	}
	hits = hits[cut:]

	if len(hits) >= rule.Limit {
		m.hits[k] = hits
		return false, nil
	}

	m.hits[k] = append(hits, now)

	return true, nil
}

// Close очищает накопленные попадания.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.hits)

	return nil
}
