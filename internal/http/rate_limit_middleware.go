package http

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/anylai/signup/internal/errors"
	"github.com/anylai/signup/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = time.Hour
)

// ipLimiterStore holds one token bucket per client IP.
type ipLimiterStore struct {
	limiters sync.Map // map[string]*ipLimiterEntry
	rps      float64
	burst    int
}

type ipLimiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

// RateLimitMiddleware limits requests per client IP with a token bucket. Idle
// buckets are dropped periodically until ctx is done.
// Rejected requests get 429 with a Retry-After header in seconds.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &ipLimiterStore{rps: rps, burst: burst}

	go store.cleanupStale(ctx, limiterCleanupInterval, limiterIdleTimeout)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.getLimiter(clientIP, time.Now())

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()
			if retryAfter < 1 {
				retryAfter = 1
			}

			logger.Debug("rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			httputil.HandleErrorGin(c, apperrors.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// getLimiter returns the bucket of key, creating it on first use.
func (s *ipLimiterStore) getLimiter(key string, now time.Time) *rate.Limiter {
	entry := &ipLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	if existing, loaded := s.limiters.LoadOrStore(key, entry); loaded {
		entry = existing.(*ipLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
	}
	return entry.limiter
}

// removeIdle drops buckets not used since threshold.
func (s *ipLimiterStore) removeIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*ipLimiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if idle {
			s.limiters.Delete(key)
		}
		return true
	})
}

func (s *ipLimiterStore) cleanupStale(ctx context.Context, interval, idleTimeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.removeIdle(now.Add(-idleTimeout))
		}
	}
}
