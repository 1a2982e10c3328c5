package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"todo-manager/pkg/response"
)

// RateLimit throttles requests per client IP. It is a pass-through when disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		rateLimiterRequests.WithLabelValues(route).Inc()

		if !m.limiter.Allow(c.ClientIP()) {
			rateLimiterBlocked.WithLabelValues(route).Inc()
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s exceeded limit on %s", c.ClientIP(), route)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, forgotten after 5 idle minutes.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
