package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/pkg/jwt"
	"github.com/havenridge/leasing/internal/pkg/session"
	"github.com/havenridge/leasing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "", NormalizeToken("  "))
	assert.Equal(t, "abc", NormalizeToken("Bearer abc"))
	assert.Equal(t, "abc", NormalizeToken("bearer   abc "))
	assert.Equal(t, "abc", NormalizeToken("abc"))
}

func TestShouldSkipCachePath(t *testing.T) {
	patterns := []string{"/api/test-email", "/api/admin/*"}
	assert.True(t, shouldSkipCachePath("/api/test-email", patterns))
	assert.True(t, shouldSkipCachePath("/api/admin/session", patterns))
	assert.False(t, shouldSkipCachePath("/api/floor-plans", patterns))
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt.SetSecret("middleware-test")
	store := session.NewStore(testutil.NewTestDB(t), testutil.FixedClock(), time.Hour)

	r := gin.New()
	r.GET("/private", Auth(store), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentSession(c).ID)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, sess, err := store.Issue("127.0.0.1", "test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sess.ID, w.Body.String())
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", RateLimit(nil, zap.NewNop(), RateLimitOptions{Scope: "contact", Max: 1}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
