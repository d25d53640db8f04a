package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/modules/storage/imagestore"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	images *imagestore.Pipeline
}

func NewService(db *gorm.DB, images *imagestore.Pipeline) *Service {
	return &Service{db: db, images: images}
}

func filterCategory(tx *gorm.DB, category string) *gorm.DB {
	if category = strings.TrimSpace(category); category != "" {
		return tx.Where("category = ?", category)
	}
	return tx
}

// List returns images in public gallery order: featured first, then oldest first.
func (s *Service) List(category string) ([]models.GalleryImageModel, error) {
	var items []models.GalleryImageModel
	err := filterCategory(s.db, category).
		Order("featured DESC, created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

// ListBySortOrder returns images in manual admin order.
func (s *Service) ListBySortOrder(category string) ([]models.GalleryImageModel, error) {
	var items []models.GalleryImageModel
	err := filterCategory(s.db, category).
		Order("sort_order ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.GalleryImageModel, error) {
	var img models.GalleryImageModel
	if err := s.db.First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

// Create normalizes the image payload and inserts the row.
func (s *Service) Create(ctx context.Context, dto *CreateImageDTO) (*models.GalleryImageModel, error) {
	img, err := s.build(ctx, dto)
	if err != nil {
		return nil, err
	}
	return img, s.db.Create(img).Error
}

// CreateBatch inserts a whole upload set or nothing.
func (s *Service) CreateBatch(ctx context.Context, dtos []CreateImageDTO) ([]models.GalleryImageModel, error) {
	rows := make([]models.GalleryImageModel, 0, len(dtos))
	for i := range dtos {
		img, err := s.build(ctx, &dtos[i])
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		rows = append(rows, *img)
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) build(ctx context.Context, dto *CreateImageDTO) (*models.GalleryImageModel, error) {
	url, err := s.images.Normalize(ctx, dto.ImageURL)
	if err != nil {
		return nil, err
	}
	img := &models.GalleryImageModel{
		Title:       strings.TrimSpace(dto.Title),
		Description: dto.Description,
		ImageURL:    url,
		Category:    strings.TrimSpace(dto.Category),
	}
	if dto.Featured != nil {
		img.Featured = *dto.Featured
	}
	if dto.SortOrder != nil {
		img.SortOrder = *dto.SortOrder
	}
	return img, nil
}

// Update sets the category and, when filename is given, the title.
// Returns (nil, nil) when id is absent.
func (s *Service) Update(id uint, dto *UpdateImageDTO) (*models.GalleryImageModel, error) {
	img, err := s.GetByID(id)
	if err != nil || img == nil {
		return img, err
	}
	updates := map[string]interface{}{"category": strings.TrimSpace(dto.Category)}
	if dto.Filename != nil && strings.TrimSpace(*dto.Filename) != "" {
		updates["title"] = strings.TrimSpace(*dto.Filename)
	}
	if err := s.db.Model(img).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes an image and reports whether it existed.
func (s *Service) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.GalleryImageModel{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Reorder overwrites sort_order for every listed id in one transaction. If
// any id is missing nothing is written and the error wraps errNotFound.
// Images not listed keep their order.
func (s *Service) Reorder(orders []ImageOrder) error {
	ids := make([]uint, 0, len(orders))
	seen := make(map[uint]struct{}, len(orders))
	for _, o := range orders {
		if _, dup := seen[o.ID]; !dup {
			seen[o.ID] = struct{}{}
			ids = append(ids, o.ID)
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.GalleryImageModel{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return fmt.Errorf("%w: %d of %d ids exist", errNotFound, count, len(ids))
		}
		for _, o := range orders {
			err := tx.Model(&models.GalleryImageModel{}).
				Where("id = ?", o.ID).
				Update("sort_order", o.SortOrder).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
