package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/mocks"
	"github.com/finara-labs/finara-backend/internal/ratelimit"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testLimiterMocks struct {
	ctrl             *gomock.Controller
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)

	tm := &testLimiterMocks{
		ctrl:             ctrl,
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
	}

	// the health monitor waits on a channel that never fires
	var never <-chan time.Time = make(chan time.Time)
	tm.clock.EXPECT().After(gomock.Any()).Return(never).AnyTimes()

	return tm
}

func newRedisLimiter(t *testing.T, tm *testLimiterMocks, pingErr error) ratelimit.Limiter {
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(pingErr)

	l, err := ratelimit.NewLimiter(ratelimit.Config{
		RequestsPerSecond: 5,
		Burst:             10,
		KeyPrefix:         "test:limiter:",
	}, tm.redisClient, tm.clock)
	require.NoError(t, err)

	t.Cleanup(func() {
		tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
		_ = l.Close()
	})
	return l
}

func TestNewLimiter_InvalidConfig(t *testing.T) {
	tm := setupTestLimiter(t)

	_, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 0}, nil, tm.clock)
	assert.Error(t, err)
}

func TestLimiter_LocalBuckets(t *testing.T) {
	tm := setupTestLimiter(t)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 1, Burst: 2}, nil, tm.clock)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should be allowed", i)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	// other clients have their own bucket
	d, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	now = now.Add(time.Second)
	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_Redis(t *testing.T) {
	tests := []struct {
		name     string
		result   *redis_rate.Result
		expected ratelimit.Decision
	}{
		{
			name:     "allowed",
			result:   &redis_rate.Result{Allowed: 1, Remaining: 9},
			expected: ratelimit.Decision{Allowed: true, Remaining: 9},
		},
		{
			name:     "denied",
			result:   &redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 200 * time.Millisecond},
			expected: ratelimit.Decision{Allowed: false, RetryAfter: 200 * time.Millisecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestLimiter(t)
			l := newRedisLimiter(t, tm, nil)

			tm.redisRateLimiter.EXPECT().
				Allow(gomock.Any(), "test:limiter:10.0.0.1", redis_rate.Limit{Rate: 5, Burst: 10, Period: time.Second}).
				Return(tt.result, nil)

			d, err := l.Allow(context.Background(), "10.0.0.1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *d)
		})
	}
}

func TestLimiter_RedisFailure_FallsBackToLocal(t *testing.T) {
	tm := setupTestLimiter(t)
	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	l := newRedisLimiter(t, tm, nil)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(1)

	ctx := context.Background()
	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Redis is no longer consulted until the health check succeeds
	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_RedisUnavailableAtStartup(t *testing.T) {
	tm := setupTestLimiter(t)
	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	l := newRedisLimiter(t, tm, errors.New("connection refused"))

	tm.redisRateLimiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	d, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_Close(t *testing.T) {
	tm := setupTestLimiter(t)
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(nil)

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 5}, tm.redisClient, tm.clock)
	require.NoError(t, err)

	closeErr := errors.New("close failed")
	tm.redisClient.EXPECT().Close().Return(closeErr).Times(1)

	assert.ErrorIs(t, l.Close(), closeErr)
	assert.NoError(t, l.Close())

	_, err = l.Allow(context.Background(), "10.0.0.1")
	assert.ErrorIs(t, err, ratelimit.ErrClosed)
}
