package sortedstorage

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultLeaderboardKey = "grid:leaderboard"

// RedisLeaderboard keeps the lowest step count per email in a Redis sorted set with TTL support.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
// An empty key uses the default.
func NewRedisLeaderboard(client *redis.Client, key string, ttlSeconds int) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = defaultLeaderboardKey
	}

	lb := &RedisLeaderboard{
		client: client,
		key:    key,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	lb.locker = redsync.New(pool)
	return lb, nil
}

// Record stores steps for email unless the stored score is already lower or equal.
func (rl *RedisLeaderboard) Record(ctx context.Context, email string, steps int) error {
	mutex := rl.locker.NewMutex(rl.key + ":" + email + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	current, err := rl.client.ZScore(ctx, rl.key, email).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return err
	case current <= float64(steps):
		return nil
	}

	if err := rl.client.ZAdd(ctx, rl.key, redis.Z{Score: float64(steps), Member: email}).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rl.client.TTL(ctx, rl.key).Result()
	if err == nil && ttl == -1 && rl.ttl > 0 {
		_ = rl.client.Expire(ctx, rl.key, rl.ttl).Err()
	}

	return nil
}

// Top returns up to n entries with the lowest steps.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]dmn.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := rl.client.ZRangeWithScores(ctx, rl.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]dmn.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		email, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, dmn.LeaderboardEntry{Email: email, Steps: int(m.Score)})
	}
	return entries, nil
}
