package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/middleware"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/session"
	"github.com/havenridge/leasing/internal/pkg/validation"
	"go.uber.org/zap"
)

type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type sessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// Handler gates the admin panel behind a single shared password.
type Handler struct {
	store    *session.Store
	password string
	log      *zap.Logger
}

func NewHandler(store *session.Store, password string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: store, password: strings.TrimSpace(password), log: log}
}

// RegisterRoutes mounts the admin session routes. loginMW runs before login,
// typically a rate limiter.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, loginMW ...gin.HandlerFunc) {
	a := rg.Group("/admin")
	handlers := append([]gin.HandlerFunc{}, loginMW...)
	a.POST("/login", append(handlers, h.login)...)
	a.POST("/logout", middleware.OptionalAuth(h.store), h.logout)
	a.GET("/session", middleware.Auth(h.store), h.session)
}

// POST /admin/login
func (h *Handler) login(c *gin.Context) {
	if h.password == "" {
		h.log.Error("admin login attempted but no admin password is configured")
		response.InternalErrorMsg(c, "admin password is not configured")
		return
	}
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	if !passwordMatches(dto.Password, h.password) {
		h.log.Warn("admin login rejected", zap.String("ip", c.ClientIP()))
		response.UnauthorizedMsg(c, "invalid password")
		return
	}

	token, sess, err := h.store.Issue(c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{Success: true, Token: token, ExpiresAt: sess.ExpiresAt})
}

// POST /admin/logout
func (h *Handler) logout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		if err := h.store.Revoke(sess.ID); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	response.Success(c)
}

// GET /admin/session
func (h *Handler) session(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	response.OK(c, sessionResponse{Authenticated: true, ExpiresAt: sess.ExpiresAt})
}

// passwordMatches compares digests so neither content nor length leaks
// through timing.
func passwordMatches(given, want string) bool {
	a := sha256.Sum256([]byte(given))
	b := sha256.Sum256([]byte(want))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
