package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"content-api/internal/logger"
	"content-api/internal/metrics"
)

// RateLimitMessage is returned when a client exceeds its request budget.
const RateLimitMessage = "Too many requests, please try again later."

// maxTrackedClients bounds the limiter cache; it is reset when exceeded.
const maxTrackedClients = 10000

// limiterCache holds one token bucket per client key with double-check locking.
type limiterCache struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	maxSize  int
}

func newLimiterCache(rps float64, burst, maxSize int) *limiterCache {
	return &limiterCache{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		maxSize:  maxSize,
	}
}

// get returns the limiter for key, creating one if needed.
func (lc *limiterCache) get(key string) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	if len(lc.limiters) >= lc.maxSize {
		lc.limiters = make(map[string]*rate.Limiter)
	}
	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

func (lc *limiterCache) size() int {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return len(lc.limiters)
}

// RateLimit limits each client IP to rps requests per second with the given
// burst. Rejected requests get 429 and the standard envelope.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	return rateLimit(newLimiterCache(rps, burst, maxTrackedClients))
}

func rateLimit(cache *limiterCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !cache.get(ip).Allow() {
			metrics.HTTPRateLimitedTotal.Inc()
			logger.WithRequestID(GetRequestID(c)).Warn("Rate limit exceeded",
				slog.String("client_ip", ip),
				slog.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": RateLimitMessage,
			})
			return
		}
		c.Next()
	}
}
