package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter initializes the shared Redis client used by the
// rate limiting middleware. If addr is empty or the ping fails the
// client stays nil and the middleware acts fail-open.
func InitRedisRateLimiter(addr, password string, db int) {
	if addr == "" {
		return
	}
	redisClient = redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// keep the server available without rate limiting
		redisClient = nil
	}
}

// RedisRateLimit is a fixed-window per-IP limiter on Redis INCR/EXPIRE.
// Key format: rl:<window_seconds>:<client_ip>
func RedisRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()
		if !allow(c, key, maxRequests, window) {
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}

// GuessRateLimit limits guess submissions per player rather than per
// IP. Requires the JWT middleware to have resolved the player first.
func GuessRateLimit(maxGuesses int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		playerID := c.GetString("player_id")
		if playerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		key := "guess_rl:" + playerID + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		if !allow(c, key, maxGuesses, window) {
			return
		}

		RLRequests.WithLabelValues("guess:" + c.FullPath()).Inc()
		c.Next()
	}
}

// allow increments the window counter and aborts the request over the
// limit. Redis errors fail open.
func allow(c *gin.Context, key string, maxRequests int, window time.Duration) bool {
	ctx := context.Background()

	val, err := redisClient.Incr(ctx, key).Result()
	if err != nil {
		c.Header("X-RateLimit-Error", "redis-error")
		return true
	}

	if val == 1 {
		redisClient.Expire(ctx, key, window)
	}

	if val > int64(maxRequests) {
		RLBlocked.WithLabelValues(c.FullPath()).Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":       "rate limit exceeded",
			"retry_after": int(window.Seconds()),
		})
		return false
	}

	return true
}
