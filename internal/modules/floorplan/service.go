package floorplan

import (
	"errors"
	"fmt"
	"time"

	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/clock"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewService(db *gorm.DB, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Service{db: db, clock: clk}
}

// List returns all floor plans, cheapest first.
func (s *Service) List() ([]models.FloorPlanModel, error) {
	var items []models.FloorPlanModel
	err := s.db.Order("starting_price ASC, id ASC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.FloorPlanModel, error) {
	var plan models.FloorPlanModel
	if err := s.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// Create inserts a plan, stamping both freshness timestamps when unset.
func (s *Service) Create(plan *models.FloorPlanModel) error {
	now := s.clock.Now()
	if plan.LastUpdated.IsZero() {
		plan.LastUpdated = now
	}
	if plan.PromoLastUpdated.IsZero() {
		plan.PromoLastUpdated = now
	}
	return s.db.Create(plan).Error
}

// Update applies a price/promotion edit. Returns (nil, nil) when id is absent.
func (s *Service) Update(id uint, dto *UpdateFloorPlanDTO) (*models.FloorPlanModel, error) {
	var out *models.FloorPlanModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		plan, err := s.apply(tx, id, dto)
		out = plan
		return err
	})
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	return out, err
}

// UpdateBatch applies every item in one transaction. An unknown id rolls the
// whole batch back and returns an error wrapping errNotFound.
func (s *Service) UpdateBatch(items []BatchUpdateItem) ([]models.FloorPlanModel, error) {
	out := make([]models.FloorPlanModel, 0, len(items))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			plan, err := s.apply(tx, item.ID, item.dto())
			if err != nil {
				return err
			}
			out = append(out, *plan)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) apply(tx *gorm.DB, id uint, dto *UpdateFloorPlanDTO) (*models.FloorPlanModel, error) {
	var plan models.FloorPlanModel
	if err := tx.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", errNotFound, id)
		}
		return nil, err
	}

	now := s.clock.Now()
	updates := map[string]interface{}{}
	if dto.StartingPrice != nil && *dto.StartingPrice != plan.StartingPrice {
		updates["starting_price"] = *dto.StartingPrice
		updates["last_updated"] = later(now, plan.LastUpdated)
	}
	if dto.PromotionAvailable != nil && *dto.PromotionAvailable != plan.PromotionAvailable {
		updates["promotion_available"] = *dto.PromotionAvailable
		updates["promo_last_updated"] = later(now, plan.PromoLastUpdated)
	}
	if len(updates) == 0 {
		return &plan, nil
	}
	if err := tx.Model(&plan).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := tx.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// later keeps the freshness timestamps monotonic under clock skew.
func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
