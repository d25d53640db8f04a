package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSession backs an issued admin token; the token is valid only while the
// row is neither revoked nor expired.
type AdminSession struct {
	ID        string     `json:"id"         gorm:"type:char(36);primaryKey"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:text"`
	ExpiresAt time.Time  `json:"expiresAt"  gorm:"index;not null"`
	RevokedAt *time.Time `json:"revokedAt"  gorm:"index"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (AdminSession) TableName() string { return "admin_sessions" }

func (s *AdminSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
