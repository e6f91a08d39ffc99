package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v9"
	"golang.org/x/time/rate"
)

// LocalRateLimiter is an in-process RequestRateLimiter, used when redis is not enabled.
type LocalRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewLocalRateLimiter() *LocalRateLimiter {
	return &LocalRateLimiter{
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	limiter := l.limiter(key, limit)

	now := time.Now()
	reservation := limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return &redis_rate.Result{Limit: limit, Allowed: 0, RetryAfter: limit.Period}, nil
	}

	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)
		return &redis_rate.Result{
			Limit:      limit,
			Allowed:    0,
			Remaining:  0,
			RetryAfter: delay,
		}, nil
	}

	return &redis_rate.Result{
		Limit:      limit,
		Allowed:    1,
		Remaining:  int(limiter.TokensAt(now)),
		RetryAfter: -1,
	}, nil
}

func (l *LocalRateLimiter) limiter(key string, limit redis_rate.Limit) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		every := limit.Period / time.Duration(limit.Rate)
		limiter = rate.NewLimiter(rate.Every(every), limit.Burst)
		l.limiters[key] = limiter
	}
	return limiter
}
