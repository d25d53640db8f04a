package models

// AmenityCategory groups amenities on the public site.
type AmenityCategory string

const (
	AmenityProperty  AmenityCategory = "property"
	AmenityApartment AmenityCategory = "apartment"
)

// Valid reports whether c is one of the known categories.
func (c AmenityCategory) Valid() bool {
	return c == AmenityProperty || c == AmenityApartment
}

type AmenityModel struct {
	ID       uint            `json:"id"       gorm:"primaryKey;autoIncrement"`
	Name     string          `json:"name"     gorm:"not null"`
	Category AmenityCategory `json:"category" gorm:"size:32;not null;index"`
	Icon     *string         `json:"icon"`
}

func (AmenityModel) TableName() string { return "amenities" }
