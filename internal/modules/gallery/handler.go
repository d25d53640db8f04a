package gallery

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

// RouteMiddleware holds optional handlers for the admin upload routes.
type RouteMiddleware struct {
	Upload []gin.HandlerFunc // POST /gallery and POST /gallery/batch
	Batch  []gin.HandlerFunc // POST /gallery/batch only
}

func chain(h gin.HandlerFunc, mws ...[]gin.HandlerFunc) []gin.HandlerFunc {
	var out []gin.HandlerFunc
	for _, mw := range mws {
		out = append(out, mw...)
	}
	return append(out, h)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, mw RouteMiddleware) {
	g := rg.Group("/gallery")
	g.GET("", h.list)

	a := g.Group("", authMW)
	a.GET("/admin", h.listAdmin)
	a.POST("", chain(h.create, mw.Upload)...)
	a.POST("/batch", chain(h.createBatch, mw.Upload, mw.Batch)...)
	a.PATCH("/reorder", h.reorder)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /gallery?category=
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Query("category"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /gallery/admin?category=, manual sort order
func (h *Handler) listAdmin(c *gin.Context) {
	items, err := h.svc.ListBySortOrder(c.Query("category"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /gallery
func (h *Handler) create(c *gin.Context) {
	var dto CreateImageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	img, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		h.writeCreateError(c, "imageUrl", err)
		return
	}
	response.OK(c, img)
}

// POST /gallery/batch
func (h *Handler) createBatch(c *gin.Context) {
	var dto BatchCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	rows, err := h.svc.CreateBatch(c.Request.Context(), dto.Images)
	if err != nil {
		h.writeCreateError(c, "images", err)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) writeCreateError(c *gin.Context, field string, err error) {
	if errors.Is(err, imagestore.ErrInvalidImage) {
		response.ValidationFailed(c, validation.Field(field, err.Error()))
		return
	}
	response.InternalError(c, err)
}

// PATCH /gallery/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var dto UpdateImageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	img, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if img == nil {
		response.NotFoundMsg(c, "gallery image not found")
		return
	}
	response.OK(c, img)
}

// DELETE /gallery/:id
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
		response.NotFoundMsg(c, "gallery image not found")
		return
	}
	response.Success(c)
}

// PATCH /gallery/reorder
func (h *Handler) reorder(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	if err := h.svc.Reorder(dto.ImageOrders); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c)
}
