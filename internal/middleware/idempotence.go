package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencePrefix = "leasing:idempotence:"
	IdempotenceHeader = "X-Idempotence-Key"
	idempotenceTTL    = 60 * time.Second

	idempotencePending = "0"
	idempotenceDone    = "1"
)

// Idempotence rejects a repeated write with 409 while the first copy is in
// flight and for idempotenceTTL after it succeeds. A failed write releases
// the key so the client can retry. The key comes from IdempotenceHeader, or
// else a hash of the request line, body, user agent, client IP and bearer token.
func Idempotence(rdb *redis.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		key, err := resolveIdempotenceKey(c)
		if err != nil {
			var sizeErr *http.MaxBytesError
			if errors.As(err, &sizeErr) {
				response.PayloadTooLarge(c, "request body is too large")
				return
			}
			response.BadRequest(c, "request body could not be read")
			return
		}
		if key == "" {
			c.Next()
			return
		}

		redisKey := IdempotencePrefix + key
		ctx := c.Request.Context()

		acquired, err := rdb.SetNX(ctx, redisKey, idempotencePending, idempotenceTTL).Result()
		if err != nil {
			log.Warn("idempotence check failed", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			state, err := rdb.Get(ctx, redisKey).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				log.Warn("idempotence lookup failed", zap.Error(err))
			}
			msg := "duplicate request: an identical request succeeded within the last minute"
			if state == idempotencePending {
				msg = "duplicate request: an identical request is still being processed"
			}
			response.Conflict(c, msg)
			return
		}

		c.Next()

		ctx = context.WithoutCancel(ctx)
		if status := c.Writer.Status(); status >= 200 && status < 300 {
			rdb.Set(ctx, redisKey, idempotenceDone, redis.KeepTTL)
		} else {
			rdb.Del(ctx, redisKey)
		}
	}
}

// resolveIdempotenceKey restores the body after reading it so the handler can bind it.
func resolveIdempotenceKey(c *gin.Context) (string, error) {
	if hdr := c.GetHeader(IdempotenceHeader); hdr != "" {
		return hashIdempotence(c.Request.Method + "|" + c.Request.URL.Path + "|" + hdr), nil
	}

	var body []byte
	if c.Request.Body != nil {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return "", err
		}
		body = raw
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	ua := c.Request.UserAgent()
	ip := c.ClientIP()
	token := NormalizeToken(c.GetHeader("Authorization"))
	if len(body) == 0 && ua == "" && ip == "" && token == "" {
		return "", nil
	}
	return hashIdempotence(c.Request.Method + "|" + c.Request.URL.String() + "|" + string(body) + "|" + ua + "|" + ip + "|" + token), nil
}

func hashIdempotence(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
