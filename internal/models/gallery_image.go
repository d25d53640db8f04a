package models

// GalleryImageModel is a category-tagged photo. SortOrder ascending is the
// manual display order.
type GalleryImageModel struct {
	Base
	Title       string  `json:"title"       gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
	ImageURL    string  `json:"imageUrl"    gorm:"type:longtext;not null"`
	Category    string  `json:"category"    gorm:"size:64;not null;index"`
	Featured    bool    `json:"featured"    gorm:"not null"`
	SortOrder   int     `json:"sortOrder"   gorm:"not null;index"`
}

func (GalleryImageModel) TableName() string { return "gallery_images" }
