package httputil

import (
	"sync"
	"time"

	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

// KeyFunc extracts the bucket key for a request; empty key skips limiting
type KeyFunc func(ctx *fasthttp.RequestCtx) string

// KeyedLimiter keeps one token bucket per key
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter creates a limiter allowing rps events per second with the given burst.
// Buckets idle for longer than ttl are dropped on the next sweep.
func NewKeyedLimiter(rps float64, burst int, ttl time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Allow reports whether one more event for key fits into its bucket
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[key]
	if !ok {
		l.sweep(now)
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Size returns the number of tracked buckets
func (l *KeyedLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *KeyedLimiter) sweep(now time.Time) {
	if l.ttl <= 0 {
		return
	}
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.ttl {
			delete(l.limiters, key)
		}
	}
}

// Middleware rejects requests over the limit with 429
func (l *KeyedLimiter) Middleware(keyFn KeyFunc) Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			key := keyFn(ctx)
			if key != "" && !l.Allow(key) {
				WriteErrorResponse(ctx, "too many requests", fasthttp.StatusTooManyRequests)
				return
			}
			next(ctx)
		}
	}
}
