package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/logger"
)

const (
	healthCheckInterval = 10 * time.Second
	pingTimeout         = 2 * time.Second
	// local buckets idle for longer than this are dropped once the table grows past maxLocalKeys
	localIdleTTL = 10 * time.Minute
	maxLocalKeys = 10000
)

// ErrClosed is returned by Allow after Close
var ErrClosed = errors.New("rate limiter is closed")

// Config holds the per-client limit
type Config struct {
	RequestsPerSecond int
	Burst             int
	KeyPrefix         string
}

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Remaining  int
}

// Limiter decides whether a client may make another request
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token from the bucket of key
	Allow(ctx context.Context, key string) (*Decision, error)

	// Close stops the health monitor and closes the Redis connection
	Close() error
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	cfg            Config
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	mu             sync.Mutex
	buckets        map[string]*localBucket
	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	stop           chan struct{}
}

// NewLimiter creates a limiter. With a nil Redis client every bucket is held in process;
// otherwise buckets live in Redis and the in-process ones are used while Redis is unreachable.
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if cfg.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}

	l := &limiter{
		cfg:     cfg,
		redis:   rc,
		clock:   clock,
		buckets: make(map[string]*localBucket),
		stop:    make(chan struct{}),
	}

	if rc == nil {
		logger.Info("Rate limiter initialized with local buckets",
			zap.Int("requests_per_second", cfg.RequestsPerSecond),
			zap.Int("burst", cfg.Burst))
		return l, nil
	}

	l.distributed = rc.NewRateLimiter()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable, using local rate limit buckets", zap.Error(err))
	} else {
		l.redisAvailable.Store(true)
	}

	go l.monitorRedisHealth()

	logger.Info("Rate limiter initialized with Redis buckets",
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("redis_available", l.redisAvailable.Load()))

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (*Decision, error) {
	if l.closed.Load() {
		return nil, ErrClosed
	}

	if l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.cfg.KeyPrefix+key, redis_rate.Limit{
			Rate:   l.cfg.RequestsPerSecond,
			Burst:  l.cfg.Burst,
			Period: time.Second,
		})
		if err == nil {
			return &Decision{
				Allowed:    res.Allowed > 0,
				RetryAfter: max(res.RetryAfter, 0),
				Remaining:  res.Remaining,
			}, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		l.redisAvailable.Store(false)
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local buckets", zap.Error(err))
	}

	return l.allowLocal(key), nil
}

func (l *limiter) allowLocal(key string) *Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= maxLocalKeys {
			l.evictIdle(now)
		}
		bucket = &localBucket{limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)}
		l.buckets[key] = bucket
	}
	bucket.lastSeen = now

	reservation := bucket.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return &Decision{Allowed: false, RetryAfter: delay}
	}

	return &Decision{
		Allowed:   true,
		Remaining: int(bucket.limiter.TokensAt(now)),
	}
}

// evictIdle must be called with mu held
func (l *limiter) evictIdle(now time.Time) {
	for key, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) > localIdleTTL {
			delete(l.buckets, key)
		}
	}
}

// monitorRedisHealth periodically pings Redis and switches back to it once it recovers
func (l *limiter) monitorRedisHealth() {
	for {
		select {
		case <-l.stop:
			return
		case <-l.clock.After(healthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err := l.redis.Ping(ctx)
		cancel()

		available := err == nil
		wasAvailable := l.redisAvailable.Swap(available)
		if !wasAvailable && available {
			logger.Info("Redis connection restored, using Redis rate limit buckets")
		}
	}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.stop)

		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}
