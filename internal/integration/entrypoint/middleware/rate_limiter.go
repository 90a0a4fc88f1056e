// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts    = 5
	defaultWindowDuration = time.Minute
)

// RateLimiter throttles the unauthenticated auth endpoints per client
// address. Each client gets a token bucket holding maxAttempts tokens that
// refills over one window; buckets idle for a full window are evicted.
type RateLimiter struct {
	clients *cache.Cache
	limit   rate.Limit
	burst   int
}

// NewRateLimiter allows maxAttempts requests per window for every client.
// Non-positive values fall back to 5 requests per minute.
func NewRateLimiter(maxAttempts int, window time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindowDuration
	}
	return &RateLimiter{
		clients: cache.New(window, window),
		limit:   rate.Every(window / time.Duration(maxAttempts)),
		burst:   maxAttempts,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		reservation := rl.limiterFor(clientIP).Reserve()
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// limiterFor returns the bucket for key and pushes its expiry one window
// further out.
func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	if cached, ok := rl.clients.Get(key); ok {
		limiter := cached.(*rate.Limiter)
		rl.clients.SetDefault(key, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.clients.Add(key, limiter, cache.DefaultExpiration); err != nil {
		// another request for the same client won the race
		if cached, ok := rl.clients.Get(key); ok {
			return cached.(*rate.Limiter)
		}
	}
	return limiter
}
