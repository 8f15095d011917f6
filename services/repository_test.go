package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisRepo(t *testing.T) *RedisRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client, "test")
}

func TestRedisRepositoryRoundTrip(t *testing.T) {
	repo := newTestRedisRepo(t)
	ctx := context.Background()

	in := DashboardSummary{ActiveTenants: 12, TotalCapacity: 40, OccupancyRate: 30}
	require.NoError(t, repo.Save(ctx, "summary", in, time.Minute))

	var out DashboardSummary
	require.NoError(t, repo.Load(ctx, "summary", &out))
	assert.Equal(t, in, out)
}

func TestRedisRepositoryMissAndClear(t *testing.T) {
	repo := newTestRedisRepo(t)
	ctx := context.Background()

	var out DashboardSummary
	assert.ErrorIs(t, repo.Load(ctx, "absent", &out), ErrNotCached)

	require.NoError(t, repo.Save(ctx, "k", out, 0))
	require.NoError(t, repo.Clear(ctx, "k"))
	assert.ErrorIs(t, repo.Load(ctx, "k", &out), ErrNotCached)
}

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", map[string]int{"a": 1}, 0))

	var out map[string]int
	require.NoError(t, repo.Load(ctx, "k", &out))
	assert.Equal(t, 1, out["a"])

	require.NoError(t, repo.Clear(ctx, "k"))
	assert.ErrorIs(t, repo.Load(ctx, "k", &out), ErrNotCached)
}

func TestMemoryRepositoryTTL(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", 1, time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	var out int
	assert.ErrorIs(t, repo.Load(ctx, "k", &out), ErrNotCached)
}
