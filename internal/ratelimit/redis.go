package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis — реализация Limiter поверх sorted set: score = время попадания в мс.
type Redis struct {
	rdb    *redis.Client
	prefix string
	rules  map[Action]Rule
	now    func() time.Time
}

// NewRedis оборачивает готовый клиент. Если prefix пустой — используется "datingbot:rl:".
func NewRedis(rdb *redis.Client, prefix string, rules map[Action]Rule) *Redis {
	if prefix == "" {
		prefix = "datingbot:rl:"
	}

	return &Redis{rdb: rdb, prefix: prefix, rules: rules, now: time.Now}
}

// NewRedisFromURL создаёт клиент из URL (например, redis://:pass@host:6379/0) и проверяет связь.
func NewRedisFromURL(ctx context.Context, redisURL, prefix string, rules map[Action]Rule) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedis(rdb, prefix, rules), nil
}

func (r *Redis) Allow(ctx context.Context, userID int64, action Action) (bool, error) {
	const op = "ratelimit/redis/Allow"

	rule, ok := r.rules[action]
	if !ok {
		return true, nil
	}

	k := r.prefix + key(userID, action)
	now := r.now()
	nowMs := now.UnixMilli()
	member := strconv.FormatInt(nowMs, 10) + ":" + uuid.NewString()

	pipe := r.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "-inf", strconv.FormatInt(now.Add(-rule.Window).UnixMilli(), 10))
	card := pipe.ZCard(ctx, k)
	pipe.ZAdd(ctx, k, redis.Z{Score: float64(nowMs), Member: member})
	pipe.PExpire(ctx, k, rule.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if card.Val() >= int64(rule.Limit) {
		// Отклонённая попытка не должна занимать место в окне.
		if err := r.rdb.ZRem(ctx, k, member).Err(); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		return false, nil
	}

	return true, nil
}

// Close закрывает клиент Redis.
func (r *Redis) Close() error { return r.rdb.Close() }
