package amenity

import (
	"errors"

	"github.com/havenridge/leasing/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns amenities ordered by category then name. An empty category
// returns every row.
func (s *Service) List(category models.AmenityCategory) ([]models.AmenityModel, error) {
	tx := s.db.Order("category ASC, name ASC")
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var items []models.AmenityModel
	err := tx.Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.AmenityModel, error) {
	var a models.AmenityModel
	if err := s.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *Service) Create(a *models.AmenityModel) error {
	return s.db.Create(a).Error
}
