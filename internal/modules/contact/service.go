package contact

import (
	"strings"

	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/pagination"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

const newestFirst = "created_at DESC, id DESC"

// List returns submissions newest first.
func (s *Service) List() ([]models.ContactSubmissionModel, error) {
	var items []models.ContactSubmissionModel
	err := s.db.Order(newestFirst).Find(&items).Error
	return items, err
}

// ListPage returns one page of submissions, newest first.
func (s *Service) ListPage(q pagination.Query) ([]models.ContactSubmissionModel, pagination.Meta, error) {
	items := []models.ContactSubmissionModel{}
	meta, err := pagination.Paginate(s.db.Model(&models.ContactSubmissionModel{}), newestFirst, q, &items)
	return items, meta, err
}

// Create stores a submission with status "new". Type defaults to general.
func (s *Service) Create(dto *CreateSubmissionDTO) (*models.ContactSubmissionModel, error) {
	sub := &models.ContactSubmissionModel{
		Name:     strings.TrimSpace(dto.Name),
		Email:    strings.TrimSpace(dto.Email),
		Phone:    strings.TrimSpace(dto.Phone),
		Message:  dto.Message,
		Type:     dto.Type,
		Metadata: datatypes.JSONMap(dto.Metadata),
		Status:   models.ContactStatusNew,
	}
	if sub.Type == "" {
		sub.Type = models.ContactGeneral
	}
	if sub.Metadata == nil {
		sub.Metadata = datatypes.JSONMap{}
	}
	if err := s.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}
