package system

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/modules/notify"
	"github.com/havenridge/leasing/internal/pkg/clock"
	"github.com/havenridge/leasing/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier sends contact notifications.
type Notifier interface {
	Notify(ctx context.Context, sub *models.ContactSubmissionModel) notify.Result
}

type Handler struct {
	db       *gorm.DB
	notifier Notifier
	clock    clock.Clock
	log      *zap.Logger
}

func NewHandler(db *gorm.DB, notifier Notifier, clk clock.Clock, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, notifier: notifier, clock: clk, log: log}
}

// RegisterRoutes mounts ping, health and test-email. emailMW runs before
// test-email, typically a rate limiter.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, emailMW ...gin.HandlerFunc) {
	rg.GET("/ping", h.ping)
	rg.GET("/health", h.health)
	handlers := append([]gin.HandlerFunc{}, emailMW...)
	rg.GET("/test-email", append(handlers, h.testEmail)...)
}

// GET /ping
func (h *Handler) ping(c *gin.Context) {
	response.OK(c, gin.H{"data": "pong"})
}

// GET /health
func (h *Handler) health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	dbOK := err == nil && sqlDB.PingContext(c.Request.Context()) == nil

	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "database": dbOK})
}

// GET /test-email sends a sample notification. Transport failures are part
// of the 200 body, not an error status.
func (h *Handler) testEmail(c *gin.Context) {
	res := h.notifier.Notify(c.Request.Context(), notify.SampleSubmission(h.clock.Now()))
	if res.Success {
		h.log.Info("test email sent", zap.String("transport", res.Transport), zap.String("message_id", res.MessageID))
	} else {
		h.log.Warn("test email failed", zap.String("transport", res.Transport), zap.String("error", res.Error))
	}
	response.OK(c, res)
}
