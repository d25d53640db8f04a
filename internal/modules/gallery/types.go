package gallery

import "errors"

var errNotFound = errors.New("gallery image not found")

// CreateImageDTO is the full upload schema.
type CreateImageDTO struct {
	Title       string  `json:"title"       binding:"required,max=255"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl"    binding:"required"`
	Category    string  `json:"category"    binding:"required,max=64"`
	Featured    *bool   `json:"featured"`
	SortOrder   *int    `json:"sortOrder"   binding:"omitempty,gte=0"`
}

// BatchCreateDTO is a photo upload set written in one transaction.
type BatchCreateDTO struct {
	Images []CreateImageDTO `json:"images" binding:"required,min=1,dive"`
}

// UpdateImageDTO recategorizes an image; filename renames its title.
type UpdateImageDTO struct {
	Category string  `json:"category" binding:"required,max=64"`
	Filename *string `json:"filename" binding:"omitempty,max=255"`
}

// ImageOrder is one {id, sortOrder} pair of a reorder payload.
type ImageOrder struct {
	ID        uint `json:"id"        binding:"required"`
	SortOrder int  `json:"sortOrder" binding:"gte=0"`
}

type ReorderDTO struct {
	ImageOrders []ImageOrder `json:"imageOrders" binding:"required,min=1,dive"`
}
