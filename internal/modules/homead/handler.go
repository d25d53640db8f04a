package homead

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/modules/storage/imagestore"
	"github.com/havenridge/leasing/internal/pkg/params"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/validation"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, uploadMW ...gin.HandlerFunc) {
	g := rg.Group("/home-page-ads")
	g.GET("/active", h.listActive)

	a := g.Group("", authMW)
	a.GET("", h.list)
	a.POST("", append(append([]gin.HandlerFunc{}, uploadMW...), h.create)...)
	a.PATCH("/:id", append(append([]gin.HandlerFunc{}, uploadMW...), h.update)...)
	a.DELETE("/:id", h.delete)
}

// GET /home-page-ads/active
func (h *Handler) listActive(c *gin.Context) {
	items, err := h.svc.ListActive()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /home-page-ads
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /home-page-ads
func (h *Handler) create(c *gin.Context) {
	var dto CreateAdDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	ad, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, ad)
}

// PATCH /home-page-ads/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var dto UpdateAdDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	ad, err := h.svc.Update(c.Request.Context(), id, &dto)
	if err != nil {
		writeError(c, err)
		return
	}
	if ad == nil {
		response.NotFoundMsg(c, errNotFound.Error())
		return
	}
	response.OK(c, ad)
}

// DELETE /home-page-ads/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	found, err := h.svc.Delete(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, errNotFound.Error())
		return
	}
	response.Success(c)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidWindow):
		response.ValidationFailed(c, validation.Field("startDate", err.Error()))
	case errors.Is(err, imagestore.ErrInvalidImage):
		response.ValidationFailed(c, validation.Field("imageUrl", err.Error()))
	default:
		response.InternalError(c, err)
	}
}
