package gallery

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/modules/storage/imagestore"
	"github.com/havenridge/leasing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, *Service, *gin.Engine) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := NewService(db, imagestore.NewPipeline(nil))
	r, api := testutil.NewRouter()
	NewHandler(svc).RegisterRoutes(api, testutil.NoAuth(), RouteMiddleware{})
	return db, svc, r
}

func seedImages(t *testing.T, db *gorm.DB, n int) []models.GalleryImageModel {
	t.Helper()
	out := make([]models.GalleryImageModel, 0, n)
	for i := 0; i < n; i++ {
		img := models.GalleryImageModel{
			Title:     fmt.Sprintf("Photo %d", i+1),
			ImageURL:  fmt.Sprintf("/images/gallery/%d.jpg", i+1),
			Category:  "interior",
			SortOrder: i + 1,
		}
		require.NoError(t, db.Create(&img).Error)
		out = append(out, img)
	}
	return out
}

func sortOrders(t *testing.T, db *gorm.DB) map[uint]int {
	t.Helper()
	var rows []models.GalleryImageModel
	require.NoError(t, db.Find(&rows).Error)
	out := make(map[uint]int, len(rows))
	for _, r := range rows {
		out[r.ID] = r.SortOrder
	}
	return out
}

func TestReorderAppliesListedIDsOnly(t *testing.T) {
	db, _, r := setup(t)
	imgs := seedImages(t, db, 4)

	w := testutil.Do(t, r, http.MethodPatch, "/api/gallery/reorder", gin.H{
		"imageOrders": []gin.H{
			{"id": imgs[2].ID, "sortOrder": 1},
			{"id": imgs[0].ID, "sortOrder": 2},
			{"id": imgs[1].ID, "sortOrder": 3},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	orders := sortOrders(t, db)
	assert.Equal(t, 1, orders[imgs[2].ID])
	assert.Equal(t, 2, orders[imgs[0].ID])
	assert.Equal(t, 3, orders[imgs[1].ID])
	assert.Equal(t, 4, orders[imgs[3].ID], "unlisted image keeps its order")

	w = testutil.Do(t, r, http.MethodGet, "/api/gallery/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := testutil.Decode[[]models.GalleryImageModel](t, w)
	assert.Equal(t, []uint{imgs[2].ID, imgs[0].ID, imgs[1].ID, imgs[3].ID}, ids(listed))
}

func TestReorderUnknownIDWritesNothing(t *testing.T) {
	db, _, r := setup(t)
	imgs := seedImages(t, db, 2)
	before := sortOrders(t, db)

	w := testutil.Do(t, r, http.MethodPatch, "/api/gallery/reorder", gin.H{
		"imageOrders": []gin.H{
			{"id": imgs[1].ID, "sortOrder": 1},
			{"id": 999, "sortOrder": 2},
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before, sortOrders(t, db))
}

func TestReorderValidation(t *testing.T) {
	_, _, r := setup(t)

	w := testutil.Do(t, r, http.MethodPatch, "/api/gallery/reorder", gin.H{"imageOrders": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, r, http.MethodPatch, "/api/gallery/reorder", gin.H{
		"imageOrders": []gin.H{{"id": 1, "sortOrder": -1}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode[testutil.ErrorBody](t, w).Fields(), "imageOrders[0].sortOrder")
}

func TestDelete(t *testing.T) {
	db, _, r := setup(t)
	imgs := seedImages(t, db, 2)

	w := testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/api/gallery/%d", imgs[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, testutil.Decode[map[string]bool](t, w)["success"])

	w = testutil.Do(t, r, http.MethodDelete, "/api/gallery/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.GalleryImageModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateAndList(t *testing.T) {
	db, _, r := setup(t)
	seedImages(t, db, 1)

	w := testutil.Do(t, r, http.MethodPost, "/api/gallery", gin.H{
		"title":    "Rooftop",
		"imageUrl": "https://cdn.example.com/rooftop.jpg",
		"category": "exterior",
		"featured": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := testutil.Decode[models.GalleryImageModel](t, w)
	assert.Equal(t, "https://cdn.example.com/rooftop.jpg", created.ImageURL)

	w = testutil.Do(t, r, http.MethodGet, "/api/gallery", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := testutil.Decode[[]models.GalleryImageModel](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, created.ID, list[0].ID, "featured images come first")

	w = testutil.Do(t, r, http.MethodGet, "/api/gallery?category=exterior", nil)
	assert.Len(t, testutil.Decode[[]models.GalleryImageModel](t, w), 1)
}

func TestCreateValidation(t *testing.T) {
	_, _, r := setup(t)

	w := testutil.Do(t, r, http.MethodPost, "/api/gallery", gin.H{"title": "No URL"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := testutil.Decode[testutil.ErrorBody](t, w).Fields()
	assert.Contains(t, fields, "imageUrl")
	assert.Contains(t, fields, "category")

	w = testutil.Do(t, r, http.MethodPost, "/api/gallery", gin.H{
		"title":    "Broken",
		"imageUrl": "data:image/png;base64,bm90IGFuIGltYWdl",
		"category": "interior",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"imageUrl"}, testutil.Decode[testutil.ErrorBody](t, w).Fields())
}

func TestCreateRejectsOversizedImage(t *testing.T) {
	db, _, r := setup(t)
	huge := testutil.HeaderOnlyPNGDataURL(20000, 20000)

	w := testutil.Do(t, r, http.MethodPost, "/api/gallery", gin.H{
		"title":    "Panorama",
		"imageUrl": huge,
		"category": "exterior",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"imageUrl"}, testutil.Decode[testutil.ErrorBody](t, w).Fields())

	w = testutil.Do(t, r, http.MethodPost, "/api/gallery/batch", gin.H{
		"images": []gin.H{{"title": "Panorama", "imageUrl": huge, "category": "exterior"}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.GalleryImageModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUploadMiddlewareGuardsWriteRoutes(t *testing.T) {
	db := testutil.NewTestDB(t)
	r, api := testutil.NewRouter()
	var upload, batch int
	NewHandler(NewService(db, imagestore.NewPipeline(nil))).RegisterRoutes(api, testutil.NoAuth(), RouteMiddleware{
		Upload: []gin.HandlerFunc{func(c *gin.Context) { upload++ }},
		Batch:  []gin.HandlerFunc{func(c *gin.Context) { batch++ }},
	})

	testutil.Do(t, r, http.MethodPost, "/api/gallery", gin.H{"title": "A", "imageUrl": "/a.jpg", "category": "interior"})
	assert.Equal(t, 1, upload)
	assert.Equal(t, 0, batch)

	testutil.Do(t, r, http.MethodPost, "/api/gallery/batch", gin.H{
		"images": []gin.H{{"title": "B", "imageUrl": "/b.jpg", "category": "interior"}},
	})
	assert.Equal(t, 2, upload)
	assert.Equal(t, 1, batch)

	testutil.Do(t, r, http.MethodGet, "/api/gallery", nil)
	assert.Equal(t, 2, upload)
}

func TestBatchCreateIsAtomic(t *testing.T) {
	db, _, r := setup(t)

	w := testutil.Do(t, r, http.MethodPost, "/api/gallery/batch", gin.H{
		"images": []gin.H{
			{"title": "A", "imageUrl": "/a.jpg", "category": "interior"},
			{"title": "B", "imageUrl": "data:image/png;base64,bm90IGFuIGltYWdl", "category": "interior"},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.GalleryImageModel{}).Count(&count).Error)
	assert.Zero(t, count)

	w = testutil.Do(t, r, http.MethodPost, "/api/gallery/batch", gin.H{
		"images": []gin.H{
			{"title": "A", "imageUrl": "/a.jpg", "category": "interior"},
			{"title": "B", "imageUrl": "/b.jpg", "category": "interior"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, testutil.Decode[[]models.GalleryImageModel](t, w), 2)
}

func TestUpdateRenamesAndRecategorizes(t *testing.T) {
	db, _, r := setup(t)
	img := seedImages(t, db, 1)[0]

	w := testutil.Do(t, r, http.MethodPatch, fmt.Sprintf("/api/gallery/%d", img.ID), gin.H{
		"category": "amenities",
		"filename": "Pool deck",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := testutil.Decode[models.GalleryImageModel](t, w)
	assert.Equal(t, "amenities", got.Category)
	assert.Equal(t, "Pool deck", got.Title)

	w = testutil.Do(t, r, http.MethodPatch, "/api/gallery/999", gin.H{"category": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
