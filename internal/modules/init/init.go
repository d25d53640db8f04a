package init_

import (
	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/pkg/clock"
	"github.com/havenridge/leasing/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type initResponse struct {
	Success bool `json:"success"`
	Counts
}

// Handler loads the demo catalog.
type Handler struct {
	db    *gorm.DB
	clock clock.Clock
	log   *zap.Logger
}

func NewHandler(db *gorm.DB, clk clock.Clock, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, clock: clk, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/init-data", h.initData)
}

// POST /init-data
func (h *Handler) initData(c *gin.Context) {
	counts, err := Seed(h.db, h.clock.Now())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.log.Info("catalog seeded",
		zap.Int("floor_plans", counts.FloorPlans),
		zap.Int("amenities", counts.Amenities),
		zap.Int("gallery_images", counts.GalleryImages),
	)
	response.OK(c, initResponse{Success: true, Counts: counts})
}
