package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_PerKey(t *testing.T) {
	l := NewMemoryLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok)
}

func TestMemoryLimiter_EvictsIdleBuckets(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)
	assert.Len(t, l.buckets, 1)

	now = now.Add(2 * time.Minute)
	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok)
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "10.0.0.2")

	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok)
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	args := m.Called(ctx, key)
	return redis.NewIntResult(int64(args.Int(0)), args.Error(1))
}

func (m *MockCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, expiration)
	return redis.NewBoolResult(args.Bool(0), args.Error(1))
}

func newTestRedisLimiter(c counter) *RedisLimiter {
	l := NewRedisLimiter(c, "booking", 2, time.Minute)
	l.now = func() time.Time { return time.Unix(1700000030, 0) }
	return l
}

func TestRedisLimiter_FirstHitSetsExpiry(t *testing.T) {
	c := &MockCounter{}
	l := newTestRedisLimiter(c)
	ctx := context.Background()
	key := "ratelimit:booking:10.0.0.1:1699999980"

	c.On("Incr", ctx, key).Return(1, nil).Once()
	c.On("Expire", ctx, key, time.Minute).Return(true, nil).Once()

	ok, err := l.Allow(ctx, "10.0.0.1")

	require.NoError(t, err)
	assert.True(t, ok)
	c.AssertExpectations(t)
}

func TestRedisLimiter_OverLimit(t *testing.T) {
	c := &MockCounter{}
	l := newTestRedisLimiter(c)
	ctx := context.Background()

	c.On("Incr", ctx, mock.Anything).Return(3, nil).Once()

	ok, err := l.Allow(ctx, "10.0.0.1")

	require.NoError(t, err)
	assert.False(t, ok)
	c.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
}

func TestRedisLimiter_Error(t *testing.T) {
	c := &MockCounter{}
	l := newTestRedisLimiter(c)
	ctx := context.Background()

	c.On("Incr", ctx, mock.Anything).Return(0, errors.New("connection refused")).Once()

	ok, err := l.Allow(ctx, "10.0.0.1")

	assert.Error(t, err)
	assert.False(t, ok)
}
