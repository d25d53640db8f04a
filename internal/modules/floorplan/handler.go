package floorplan

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/markdown"
	"github.com/havenridge/leasing/internal/pkg/params"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/validation"
)

const emptyPatchMessage = "at least one of startingPrice or promotionAvailable is required"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/floor-plans")
	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.PATCH("", h.updateBatch)
	a.PATCH("/:id", h.update)
}

// GET /floor-plans
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	for i := range items {
		withHTML(&items[i])
	}
	response.OK(c, items)
}

// GET /floor-plans/:id
func (h *Handler) get(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	plan, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if plan == nil {
		response.NotFoundMsg(c, "floor plan not found")
		return
	}
	withHTML(plan)
	response.OK(c, plan)
}

// PATCH /floor-plans/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var dto UpdateFloorPlanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	if dto.empty() {
		response.ValidationFailed(c, validation.Field("body", emptyPatchMessage))
		return
	}

	plan, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if plan == nil {
		response.NotFoundMsg(c, "floor plan not found")
		return
	}
	withHTML(plan)
	response.OK(c, plan)
}

// PATCH /floor-plans, batch rent and promotion save
func (h *Handler) updateBatch(c *gin.Context) {
	var dto BatchUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	var fieldErrs []response.FieldError
	for i, item := range dto.Updates {
		if item.dto().empty() {
			fieldErrs = append(fieldErrs, response.FieldError{
				Field:   fmt.Sprintf("updates[%d]", i),
				Message: emptyPatchMessage,
			})
		}
	}
	if len(fieldErrs) > 0 {
		response.ValidationFailed(c, fieldErrs)
		return
	}

	plans, err := h.svc.UpdateBatch(dto.Updates)
	if err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	for i := range plans {
		withHTML(&plans[i])
	}
	response.OK(c, plans)
}

func withHTML(plan *models.FloorPlanModel) {
	if plan.Description != nil {
		plan.DescriptionHTML = markdown.Render(*plan.Description)
	}
}
