package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitOptions configures a fixed-window per-IP limit.
type RateLimitOptions struct {
	Scope  string
	Max    int64
	Window time.Duration
}

// RateLimit counts requests per client IP in fixed windows stored in Redis.
// A nil client or a Redis failure lets the request through.
func RateLimit(rdb *redis.Client, log *zap.Logger, opts RateLimitOptions) gin.HandlerFunc {
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.Max <= 0 {
		opts.Max = 5
	}
	return func(c *gin.Context) {
		if rdb == nil || IsAuthenticated(c) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		window := time.Now().UnixNano() / int64(opts.Window)
		key := fmt.Sprintf("leasing:rate_limit:%s:%s:%d", opts.Scope, ip, window)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, opts.Window+time.Second)
		}

		if count > opts.Max {
			c.Header("Retry-After", fmt.Sprintf("%d", int(opts.Window/time.Second)))
			response.TooManyRequests(c, "too many requests, please try again later")
			return
		}
		c.Next()
	}
}
