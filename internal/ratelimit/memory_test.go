package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pribylovaa/go-dating-bot/internal/config"
	"github.com/stretchr/testify/require"
)

// fakeClock — управляемые часы для детерминированных тестов окна.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newMemoryWithClock() (*Memory, *fakeClock) {
	clk := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewMemory(DefaultRules())
	m.now = clk.Now
	return m, clk
}

func TestMemory_SlidingWindow(t *testing.T) {
	t.Parallel()

	m, clk := newMemoryWithClock()
	ctx := context.Background()

	// request: 3 за 5 минут.
	for i := 0; i < 3; i++ {
		ok, err := m.Allow(ctx, 1, ActionRequest)
		require.NoError(t, err)
		require.True(t, ok, "attempt %d", i)
		clk.Advance(time.Minute)
	}

	ok, _ := m.Allow(ctx, 1, ActionRequest)
	require.False(t, ok)

	// Через 5 минут после первого попадания освобождается одно место.
	clk.Advance(2 * time.Minute)
	ok, _ = m.Allow(ctx, 1, ActionRequest)
	require.True(t, ok)
	ok, _ = m.Allow(ctx, 1, ActionRequest)
	require.False(t, ok)
}

// Отклонённые попытки не продлевают блокировку.
func TestMemory_RejectedAttemptsNotCounted(t *testing.T) {
	t.Parallel()

	m, clk := newMemoryWithClock()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, _ := m.Allow(ctx, 7, ActionSearch)
		require.True(t, ok)
	}
	for i := 0; i < 10; i++ {
		ok, _ := m.Allow(ctx, 7, ActionSearch)
		require.False(t, ok)
	}

	clk.Advance(time.Minute + time.Second)
	ok, _ := m.Allow(ctx, 7, ActionSearch)
	require.True(t, ok)
}

func TestMemory_IsolationAndUnknownAction(t *testing.T) {
	t.Parallel()

	m, _ := newMemoryWithClock()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, _ := m.Allow(ctx, 1, ActionSearch)
		require.True(t, ok)
	}
	ok, _ := m.Allow(ctx, 1, ActionSearch)
	require.False(t, ok)

	// Другой пользователь и другое действие не затронуты.
	ok, _ = m.Allow(ctx, 2, ActionSearch)
	require.True(t, ok)
	ok, _ = m.Allow(ctx, 1, ActionMessage)
	require.True(t, ok)

	// Действие без правила разрешено всегда.
	for i := 0; i < 100; i++ {
		ok, _ = m.Allow(ctx, 1, Action("unknown"))
		require.True(t, ok)
	}
}

func TestMemory_Concurrent(t *testing.T) {
	t.Parallel()

	m := NewMemory(map[Action]Rule{ActionMessage: {Limit: 50, Window: time.Hour}})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := m.Allow(context.Background(), 1, ActionMessage); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 50, allowed)
	require.NoError(t, m.Close())
}

func TestNew_Backends(t *testing.T) {
	t.Parallel()

	l, err := New(context.Background(), config.RateLimitConfig{Backend: config.RateLimitMemory})
	require.NoError(t, err)
	require.IsType(t, &Memory{}, l)

	_, err = New(context.Background(), config.RateLimitConfig{Backend: "memcached"})
	require.Error(t, err)

	_, err = New(context.Background(), config.RateLimitConfig{Backend: config.RateLimitRedis, RedisURL: "::not a url::"})
	require.Error(t, err)
}
