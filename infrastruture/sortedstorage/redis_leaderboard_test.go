package sortedstorage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboard(t *testing.T, ttlSeconds int) (*RedisLeaderboard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	lb, err := NewRedisLeaderboard(client, "", ttlSeconds)
	require.NoError(t, err)
	return lb, mr
}

func TestRedisLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the lowest steps per email", func(t *testing.T) {
		lb, _ := newTestLeaderboard(t, 60)

		require.NoError(t, lb.Record(ctx, "a@b.com", 5))
		require.NoError(t, lb.Record(ctx, "a@b.com", 7)) // higher, ignored
		top, err := lb.Top(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []dmn.LeaderboardEntry{{Email: "a@b.com", Steps: 5}}, top)

		require.NoError(t, lb.Record(ctx, "a@b.com", 3)) // lower, replaces
		top, err = lb.Top(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []dmn.LeaderboardEntry{{Email: "a@b.com", Steps: 3}}, top)
	})

	t.Run("mixed sequence", func(t *testing.T) {
		lb, _ := newTestLeaderboard(t, 60)
		for _, steps := range []int{5, 7, 3} {
			require.NoError(t, lb.Record(ctx, "a@b.com", steps))
		}
		require.NoError(t, lb.Record(ctx, "c@d.com", 4))

		top, err := lb.Top(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []dmn.LeaderboardEntry{
			{Email: "a@b.com", Steps: 3},
			{Email: "c@d.com", Steps: 4},
		}, top)
	})

	t.Run("Top is ascending and truncated", func(t *testing.T) {
		lb, _ := newTestLeaderboard(t, 60)
		require.NoError(t, lb.Record(ctx, "c@d.com", 4))
		require.NoError(t, lb.Record(ctx, "a@b.com", 3))
		require.NoError(t, lb.Record(ctx, "e@f.com", 9))

		top, err := lb.Top(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []dmn.LeaderboardEntry{
			{Email: "a@b.com", Steps: 3},
			{Email: "c@d.com", Steps: 4},
			{Email: "e@f.com", Steps: 9},
		}, top)

		top, err = lb.Top(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []dmn.LeaderboardEntry{
			{Email: "a@b.com", Steps: 3},
			{Email: "c@d.com", Steps: 4},
		}, top)
	})

	t.Run("Top of zero is nil", func(t *testing.T) {
		lb, _ := newTestLeaderboard(t, 60)
		require.NoError(t, lb.Record(ctx, "a@b.com", 1))

		top, err := lb.Top(ctx, 0)
		require.NoError(t, err)
		assert.Nil(t, top)
	})

	t.Run("TTL is set once", func(t *testing.T) {
		lb, mr := newTestLeaderboard(t, 60)
		require.NoError(t, lb.Record(ctx, "a@b.com", 5))
		assert.Equal(t, time.Minute, mr.TTL(defaultLeaderboardKey))

		mr.FastForward(20 * time.Second)
		require.NoError(t, lb.Record(ctx, "c@d.com", 2))
		assert.Equal(t, 40*time.Second, mr.TTL(defaultLeaderboardKey))
	})
}

func TestNewRedisLeaderboard(t *testing.T) {
	_, err := NewRedisLeaderboard(nil, "", 60)
	assert.Error(t, err)
}
