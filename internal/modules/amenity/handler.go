package amenity

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/validation"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/amenities", h.list)
}

// GET /amenities?category=property|apartment
func (h *Handler) list(c *gin.Context) {
	category := models.AmenityCategory(strings.ToLower(strings.TrimSpace(c.Query("category"))))
	if category != "" && !category.Valid() {
		response.ValidationFailed(c, validation.Field("category", "must be one of: property, apartment"))
		return
	}
	items, err := h.svc.List(category)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}
