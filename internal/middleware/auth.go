package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/session"
)

const ContextKeySession = "admin_session"

// Auth returns a middleware that requires a live admin session token.
func Auth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Verify(ExtractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeySession, sess)
		store.Touch(sess.ID)
		c.Next()
	}
}

// OptionalAuth records the session when a valid token is present, but does not block.
func OptionalAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := ExtractToken(c); token != "" {
			if sess, err := store.Verify(token); err == nil {
				c.Set(ContextKeySession, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the verified admin session, or nil.
func CurrentSession(c *gin.Context) *models.AdminSession {
	v, ok := c.Get(ContextKeySession)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.AdminSession)
	return sess
}

// IsAuthenticated reports whether the request carries a valid admin token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentSession(c) != nil
}

// ExtractToken reads the bearer token from the Authorization header.
func ExtractToken(c *gin.Context) string {
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
