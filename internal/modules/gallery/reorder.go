package gallery

import "github.com/havenridge/leasing/internal/models"

// MoveUp swaps item i with its predecessor on a copy of list. Out of range
// or first-position moves return an unchanged copy.
func MoveUp(list []models.GalleryImageModel, i int) []models.GalleryImageModel {
	out := append([]models.GalleryImageModel(nil), list...)
	if i <= 0 || i >= len(out) {
		return out
	}
	out[i-1], out[i] = out[i], out[i-1]
	return out
}

// MoveDown swaps item i with its successor on a copy of list.
func MoveDown(list []models.GalleryImageModel, i int) []models.GalleryImageModel {
	out := append([]models.GalleryImageModel(nil), list...)
	if i < 0 || i >= len(out)-1 {
		return out
	}
	out[i], out[i+1] = out[i+1], out[i]
	return out
}

// SequentialOrders numbers list positions from 1, producing the payload of
// PATCH /gallery/reorder.
func SequentialOrders(list []models.GalleryImageModel) []ImageOrder {
	out := make([]ImageOrder, len(list))
	for i, img := range list {
		out[i] = ImageOrder{ID: img.ID, SortOrder: i + 1}
	}
	return out
}
