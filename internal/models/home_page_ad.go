package models

import "time"

const (
	MinDisplayFrequency = 1
	MaxDisplayFrequency = 100
)

// HomePageAdModel is a promotional image shown on the home page.
// DisplayFrequency is advisory and left to clients.
type HomePageAdModel struct {
	Base
	ImageURL         string     `json:"imageUrl"         gorm:"type:longtext;not null"`
	DisplayFrequency int        `json:"displayFrequency" gorm:"not null"`
	IsActive         bool       `json:"isActive"         gorm:"not null;index"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
}

func (HomePageAdModel) TableName() string { return "home_page_ads" }

// IsDisplayable reports whether the ad is active and now falls inside its
// optional [StartDate, EndDate] window. Both bounds are inclusive.
func (a *HomePageAdModel) IsDisplayable(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartDate != nil && now.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && now.After(*a.EndDate) {
		return false
	}
	return true
}
