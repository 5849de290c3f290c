package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "sippy:rate_limit:"

// RateLimiter throttles requests per client IP over a fixed window,
// counting in Redis so the limit holds across restarts. When Redis is
// unavailable it lets requests through: losing throttling must not take
// the whole API down with it.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

// Handle returns the gin middleware enforcing the limit.
func (rl *RateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rateLimitKeyPrefix + c.ClientIP()

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("Rate limiter unavailable, letting request through: %v", err)
			c.Next()
			return
		}

		// First hit in the window owns setting the expiry. If that
		// fails the key would count forever, so drop it instead.
		if count == 1 {
			if err := rl.rdb.Expire(ctx, key, rl.window).Err(); err != nil {
				log.Printf("Rate limiter expire failed, dropping counter: %v", err)
				rl.rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rl.rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = rl.window
		}

		remaining := int64(rl.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(rl.limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":     "error",
				"message":    "Too many requests. Slow down!",
				"retry_in_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}