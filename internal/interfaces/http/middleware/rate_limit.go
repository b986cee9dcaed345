package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/colorsense/colorsense-backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// burstWindow is the short window the burst cap applies to
const burstWindow = time.Second

// RateLimit enforces a per-minute request quota plus a short burst cap,
// both backed by Redis counters. Counters are scoped to the owner identity
// when the client sends one and to the client IP otherwise, so one noisy
// client behind a shared NAT cannot exhaust the quota for everyone.
// A Redis outage fails open.
func RateLimit(cfg *config.Config, redisClient *redis.Client) gin.HandlerFunc {
	limit := cfg.Security.RateLimitPerMinute
	burst := cfg.Security.RateLimitBurst

	return func(c *gin.Context) {
		scope := rateLimitScope(c)
		minuteKey := "rate_limit:min:" + scope
		burstKey := "rate_limit:burst:" + scope

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		minuteCount, err := redisClient.Get(ctx, minuteKey).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			c.Next()
			return
		}
		burstCount, err := redisClient.Get(ctx, burstKey).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			c.Next()
			return
		}

		if minuteCount >= limit || burstCount >= burst {
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		pipe := redisClient.Pipeline()
		pipe.Incr(ctx, minuteKey)
		pipe.Expire(ctx, minuteKey, time.Minute)
		pipe.Incr(ctx, burstKey)
		pipe.Expire(ctx, burstKey, burstWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			// The request already passed the check; the counters catch up
			// on the next one
			logrus.WithError(err).WithField("scope", scope).
				Warn("Failed to update rate limit counters")
		}

		remaining := limit - minuteCount - 1
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

		c.Next()
	}
}

// rateLimitScope derives the counter scope for a request. The owner header
// is read directly because rate limiting runs before RequireOwner.
func rateLimitScope(c *gin.Context) string {
	if owner := c.GetHeader(OwnerIDHeader); owner != "" {
		return "owner:" + owner
	}
	return "ip:" + c.ClientIP()
}
