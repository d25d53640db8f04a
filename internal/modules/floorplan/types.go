package floorplan

import "errors"

var errNotFound = errors.New("floor plan not found")

// UpdateFloorPlanDTO is the admin price/promotion edit. At least one field
// must be present.
type UpdateFloorPlanDTO struct {
	StartingPrice      *int  `json:"startingPrice"      binding:"omitempty,gt=0"`
	PromotionAvailable *bool `json:"promotionAvailable"`
}

func (d *UpdateFloorPlanDTO) empty() bool {
	return d.StartingPrice == nil && d.PromotionAvailable == nil
}

type BatchUpdateItem struct {
	ID                 uint  `json:"id"                 binding:"required"`
	StartingPrice      *int  `json:"startingPrice"      binding:"omitempty,gt=0"`
	PromotionAvailable *bool `json:"promotionAvailable"`
}

func (i BatchUpdateItem) dto() *UpdateFloorPlanDTO {
	return &UpdateFloorPlanDTO{StartingPrice: i.StartingPrice, PromotionAvailable: i.PromotionAvailable}
}

// BatchUpdateDTO is the rent/promotion bulk save.
type BatchUpdateDTO struct {
	Updates []BatchUpdateItem `json:"updates" binding:"required,min=1,dive"`
}
