package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/travelmind/internal/pkg/cache"
)

// RateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than idleTTL are dropped.
type RateLimiter struct {
	visitors *cache.TTLCache[*rate.Limiter]
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int, idleTTL time.Duration, logger *zap.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: cache.NewTTLCache[*rate.Limiter](idleTTL, "rate_limit_visitors", logger),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	return rl.visitors.GetOrCreate(ip, func() *rate.Limiter {
		return rate.NewLimiter(rl.rps, rl.burst)
	})
}

// Limit rejects requests over the per-IP budget with 429. A zero rate disables limiting.
func (rl *RateLimiter) Limit(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rps <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !rl.getLimiter(ip).Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Too many requests"})
			return
		}
		c.Next()
	}
}
