package models

import "time"

// FloorPlanModel is a named apartment layout with pricing.
type FloorPlanModel struct {
	ID                 uint      `json:"id"                 gorm:"primaryKey;autoIncrement"`
	Name               string    `json:"name"               gorm:"not null"`
	Bedrooms           int       `json:"bedrooms"           gorm:"not null"`
	Bathrooms          float64   `json:"bathrooms"          gorm:"type:decimal(3,1);not null"`
	Sqft               int       `json:"sqft"               gorm:"not null"`
	StartingPrice      int       `json:"startingPrice"      gorm:"not null;index"`
	ImageURL           string    `json:"imageUrl"           gorm:"type:longtext;not null"`
	Description        *string   `json:"description"        gorm:"type:text"`
	DescriptionHTML    string    `json:"descriptionHtml,omitempty" gorm:"-"`
	Available          bool      `json:"available"          gorm:"not null"`
	PromotionAvailable bool      `json:"promotionAvailable" gorm:"not null"`
	LastUpdated        time.Time `json:"lastUpdated"`
	PromoLastUpdated   time.Time `json:"promoLastUpdated"`
}

func (FloorPlanModel) TableName() string { return "floor_plans" }
