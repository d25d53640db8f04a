package init_

import (
	"time"

	"github.com/havenridge/leasing/internal/models"
	"gorm.io/gorm"
)

// Counts reports how many rows of each kind a seed run inserted.
type Counts struct {
	FloorPlans    int `json:"floorPlans"`
	Amenities     int `json:"amenities"`
	GalleryImages int `json:"galleryImages"`
}

func strptr(s string) *string { return &s }

func floorPlans(now time.Time) []models.FloorPlanModel {
	plans := []models.FloorPlanModel{
		{
			Name: "The Aspen", Bedrooms: 0, Bathrooms: 1, Sqft: 540, StartingPrice: 1295,
			ImageURL:    "/images/floor-plans/aspen.jpg",
			Description: strptr("Open **studio** layout with a full kitchen and walk-in closet."),
			Available:   true,
		},
		{
			Name: "The Birch", Bedrooms: 1, Bathrooms: 1, Sqft: 720, StartingPrice: 1495,
			ImageURL:           "/images/floor-plans/birch.jpg",
			Description:        strptr("One bedroom with a private balcony and in-unit laundry."),
			Available:          true,
			PromotionAvailable: true,
		},
		{
			Name: "The Cedar", Bedrooms: 2, Bathrooms: 2, Sqft: 1040, StartingPrice: 1895,
			ImageURL:    "/images/floor-plans/cedar.jpg",
			Description: strptr("Split two bedroom plan with dual primary suites."),
			Available:   true,
		},
		{
			Name: "The Douglas", Bedrooms: 3, Bathrooms: 2.5, Sqft: 1360, StartingPrice: 2395,
			ImageURL:    "/images/floor-plans/douglas.jpg",
			Description: strptr("Three bedroom townhome with an attached garage."),
			Available:   false,
		},
	}
	for i := range plans {
		plans[i].LastUpdated = now
		plans[i].PromoLastUpdated = now
	}
	return plans
}

func amenities() []models.AmenityModel {
	property := []string{"Resort-Style Pool", "24-Hour Fitness Center", "Clubhouse", "Dog Park", "Package Lockers", "Covered Parking"}
	apartment := []string{"In-Unit Washer/Dryer", "Private Balcony", "Stainless Steel Appliances", "Walk-In Closets", "Quartz Countertops", "Smart Thermostat"}

	out := make([]models.AmenityModel, 0, len(property)+len(apartment))
	for _, name := range property {
		out = append(out, models.AmenityModel{Name: name, Category: models.AmenityProperty})
	}
	for _, name := range apartment {
		out = append(out, models.AmenityModel{Name: name, Category: models.AmenityApartment})
	}
	return out
}

func galleryImages() []models.GalleryImageModel {
	items := []struct {
		title, category string
		featured        bool
	}{
		{"Pool at Sunset", "amenities", true},
		{"Fitness Center", "amenities", false},
		{"Clubhouse Lounge", "amenities", false},
		{"Living Room", "interior", true},
		{"Kitchen", "interior", false},
		{"Primary Bedroom", "interior", false},
		{"Building Exterior", "exterior", true},
		{"Courtyard", "exterior", false},
	}
	out := make([]models.GalleryImageModel, len(items))
	for i, it := range items {
		out[i] = models.GalleryImageModel{
			Title:     it.title,
			ImageURL:  "/images/gallery/" + slug(it.title) + ".jpg",
			Category:  it.category,
			Featured:  it.featured,
			SortOrder: i + 1,
		}
	}
	return out
}

func slug(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b = append(b, c)
		case c >= 'A' && c <= 'Z':
			b = append(b, c+('a'-'A'))
		case len(b) > 0 && b[len(b)-1] != '-':
			b = append(b, '-')
		}
	}
	for len(b) > 0 && b[len(b)-1] == '-' {
		b = b[:len(b)-1]
	}
	return string(b)
}

// Seed inserts the canonical catalog in one transaction. It is not
// idempotent: every call inserts a fresh copy.
func Seed(db *gorm.DB, now time.Time) (Counts, error) {
	plans := floorPlans(now)
	amen := amenities()
	gallery := galleryImages()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plans).Error; err != nil {
			return err
		}
		if err := tx.Create(&amen).Error; err != nil {
			return err
		}
		return tx.Create(&gallery).Error
	})
	if err != nil {
		return Counts{}, err
	}
	return Counts{FloorPlans: len(plans), Amenities: len(amen), GalleryImages: len(gallery)}, nil
}
