package homead

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/modules/storage/imagestore"
	"github.com/havenridge/leasing/internal/pkg/clock"
	"github.com/havenridge/leasing/internal/pkg/validation"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	clock  clock.Clock
	images *imagestore.Pipeline
}

func NewService(db *gorm.DB, clk clock.Clock, images *imagestore.Pipeline) *Service {
	return &Service{db: db, clock: clk, images: images}
}

func (s *Service) List() ([]models.HomePageAdModel, error) {
	var items []models.HomePageAdModel
	err := s.db.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

// ListActive returns the ads displayable right now.
func (s *Service) ListActive() ([]models.HomePageAdModel, error) {
	var candidates []models.HomePageAdModel
	err := s.db.Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	items := make([]models.HomePageAdModel, 0, len(candidates))
	for i := range candidates {
		if candidates[i].IsDisplayable(now) {
			items = append(items, candidates[i])
		}
	}
	return items, nil
}

func (s *Service) GetByID(id uint) (*models.HomePageAdModel, error) {
	var ad models.HomePageAdModel
	if err := s.db.First(&ad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ad, nil
}

func (s *Service) Create(ctx context.Context, dto *CreateAdDTO) (*models.HomePageAdModel, error) {
	ad := &models.HomePageAdModel{
		DisplayFrequency: models.MinDisplayFrequency,
		IsActive:         true,
	}
	if dto.DisplayFrequency != nil {
		ad.DisplayFrequency = *dto.DisplayFrequency
	}
	if dto.IsActive != nil {
		ad.IsActive = *dto.IsActive
	}
	var err error
	if ad.StartDate, err = optionalDate(dto.StartDate); err != nil {
		return nil, err
	}
	if ad.EndDate, err = optionalDate(dto.EndDate); err != nil {
		return nil, err
	}
	if err := checkWindow(ad.StartDate, ad.EndDate); err != nil {
		return nil, err
	}
	if ad.ImageURL, err = s.images.Normalize(ctx, strings.TrimSpace(dto.ImageURL)); err != nil {
		return nil, err
	}
	if err := s.db.Create(ad).Error; err != nil {
		return nil, err
	}
	return ad, nil
}

// Update applies a partial update. Returns (nil, nil) when id is absent.
func (s *Service) Update(ctx context.Context, id uint, dto *UpdateAdDTO) (*models.HomePageAdModel, error) {
	ad, err := s.GetByID(id)
	if err != nil || ad == nil {
		return ad, err
	}

	updates := map[string]interface{}{}
	start, end := ad.StartDate, ad.EndDate
	if dto.StartDate != nil {
		if start, err = optionalDate(dto.StartDate); err != nil {
			return nil, err
		}
		updates["start_date"] = start
	}
	if dto.EndDate != nil {
		if end, err = optionalDate(dto.EndDate); err != nil {
			return nil, err
		}
		updates["end_date"] = end
	}
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	if dto.DisplayFrequency != nil {
		updates["display_frequency"] = *dto.DisplayFrequency
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if dto.ImageURL != nil {
		url, err := s.images.Normalize(ctx, strings.TrimSpace(*dto.ImageURL))
		if err != nil {
			return nil, err
		}
		updates["image_url"] = url
	}
	if len(updates) > 0 {
		if err := s.db.Model(ad).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.HomePageAdModel{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func optionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := validation.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

func checkWindow(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return errInvalidWindow
	}
	return nil
}
