package homead

import "errors"

var (
	errNotFound      = errors.New("home page ad not found")
	errInvalidWindow = errors.New("startDate must not be after endDate")
)

// CreateAdDTO creates an ad. Dates accept RFC 3339 or YYYY-MM-DD.
type CreateAdDTO struct {
	ImageURL         string  `json:"imageUrl"         binding:"required"`
	DisplayFrequency *int    `json:"displayFrequency" binding:"omitempty,min=1,max=100"`
	IsActive         *bool   `json:"isActive"`
	StartDate        *string `json:"startDate"        binding:"omitempty,isodate"`
	EndDate          *string `json:"endDate"          binding:"omitempty,isodate"`
}

// UpdateAdDTO is a partial update. An empty date string clears that bound.
type UpdateAdDTO struct {
	ImageURL         *string `json:"imageUrl"         binding:"omitempty,min=1"`
	DisplayFrequency *int    `json:"displayFrequency" binding:"omitempty,min=1,max=100"`
	IsActive         *bool   `json:"isActive"`
	StartDate        *string `json:"startDate"        binding:"omitempty,isodate"`
	EndDate          *string `json:"endDate"          binding:"omitempty,isodate"`
}
