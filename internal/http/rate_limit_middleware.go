package http

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = time.Hour
)

// ipRateLimiter holds one token bucket per client IP.
type ipRateLimiter struct {
	limiters sync.Map // client IP -> *limiterEntry
	rps      float64
	burst    int

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

// newIPRateLimiter starts a limiter with a background sweep of idle entries.
// Close stops the sweep.
func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	l := &ipRateLimiter{
		rps:   rps,
		burst: burst,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go l.cleanupLoop(limiterCleanupInterval)
	return l
}

// Middleware rejects requests over the per-IP rate with 429 and a Retry-After header.
// c.ClientIP honours X-Forwarded-For and X-Real-IP per gin's trusted proxy settings.
func (l *ipRateLimiter) Middleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := l.get(clientIP, time.Now())

		if limiter.Allow() {
			c.Next()
			return
		}

		reservation := limiter.Reserve()
		retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
		reservation.Cancel()
		if retryAfter < 1 {
			retryAfter = 1
		}

		logger.Debug("decode rate limit exceeded",
			slog.String("client_ip", clientIP),
			slog.Int("retry_after", retryAfter))

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":   "rate_limit_exceeded",
			"message": "Too many decode requests from this IP. Please retry after the specified delay.",
		})
	}
}

func (l *ipRateLimiter) get(ip string, now time.Time) *rate.Limiter {
	if val, ok := l.limiters.Load(ip); ok {
		entry := val.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(l.rps), l.burst),
		lastAccess: now,
	}
	actual, _ := l.limiters.LoadOrStore(ip, entry)
	return actual.(*limiterEntry).limiter
}

// sweep drops limiters idle since before threshold.
func (l *ipRateLimiter) sweep(threshold time.Time) {
	l.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if idle {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *ipRateLimiter) cleanupLoop(interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.sweep(now.Add(-limiterIdleTTL))
		}
	}
}

// Close stops the cleanup goroutine and waits for it to exit.
func (l *ipRateLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.done
}
