package contact

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/modules/notify"
	"github.com/havenridge/leasing/internal/pkg/pagination"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/validation"
	"go.uber.org/zap"
)

const notifyTimeout = 30 * time.Second

// Notifier is the mail side effect of a new submission.
type Notifier interface {
	Notify(ctx context.Context, sub *models.ContactSubmissionModel) notify.Result
}

type Handler struct {
	svc      *Service
	notifier Notifier
	log      *zap.Logger
	pending  sync.WaitGroup
}

func NewHandler(svc *Service, notifier Notifier, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, notifier: notifier, log: log}
}

// RegisterRoutes mounts the contact routes. submitMW runs before the public
// POST, in order (rate limit, body cap, duplicate guard).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, submitMW ...gin.HandlerFunc) {
	g := rg.Group("/contact")
	handlers := append([]gin.HandlerFunc{}, submitMW...)
	g.POST("", append(handlers, h.create)...)
	g.GET("", authMW, h.list)
}

// Wait blocks until in-flight notifications finish.
func (h *Handler) Wait() {
	h.pending.Wait()
}

// POST /contact
func (h *Handler) create(c *gin.Context) {
	var dto CreateSubmissionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	sub, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.dispatch(c.Request.Context(), sub)
	response.OK(c, sub)
}

// GET /contact?page=&size=
func (h *Handler) list(c *gin.Context) {
	if q, ok := pagination.FromContext(c); ok {
		items, meta, err := h.svc.ListPage(q)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		meta.SetHeaders(c)
		response.OK(c, items)
		return
	}
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// dispatch notifies the office in the background. The row is already
// committed; the outcome is only logged.
func (h *Handler) dispatch(parent context.Context, sub *models.ContactSubmissionModel) {
	if h.notifier == nil {
		return
	}
	snapshot := *sub
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		defer func() {
			if r := recover(); r != nil {
				h.log.Error("contact notification panicked", zap.Any("panic", r), zap.Uint("submission_id", snapshot.ID))
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), notifyTimeout)
		defer cancel()

		res := h.notifier.Notify(ctx, &snapshot)
		if !res.Success {
			h.log.Warn("contact notification failed",
				zap.Uint("submission_id", snapshot.ID),
				zap.String("type", string(snapshot.Type)),
				zap.String("error", res.Error),
			)
			return
		}
		h.log.Info("contact notification sent",
			zap.Uint("submission_id", snapshot.ID),
			zap.String("message_id", res.MessageID),
		)
	}()
}
