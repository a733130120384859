package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"inkletter/internal/shared/logger"
	"inkletter/internal/shared/utils"
)

// RateLimiter throttles the subscription endpoints per client IP using
// a Redis fixed-window counter. The counter lives in Redis so the limit
// holds across instances; when Redis is down requests pass through,
// a stuck newsletter form being worse than a burst of signups.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger logger.Interface
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: log,
	}
}

// Limit returns the Gin middleware enforcing the per-IP budget.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("newsletter:ratelimit:ip:%s:%d", c.ClientIP(), bucket)

		ctx := c.Request.Context()

		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.client.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
