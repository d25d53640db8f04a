package floorplan

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	clock  *testutil.StubClock
	svc    *Service
	router *gin.Engine
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	clk := testutil.FixedClock()
	svc := NewService(db, clk)
	r, api := testutil.NewRouter()
	NewHandler(svc).RegisterRoutes(api, testutil.NoAuth())
	return &fixture{db: db, clock: clk, svc: svc, router: r}
}

func (f *fixture) seed(t *testing.T, name string, price int) models.FloorPlanModel {
	t.Helper()
	desc := "**Bright** corner layout"
	plan := models.FloorPlanModel{
		Name: name, Bedrooms: 1, Bathrooms: 1.5, Sqft: 750,
		StartingPrice: price, ImageURL: "/images/" + name + ".jpg",
		Description: &desc, Available: true,
	}
	require.NoError(t, f.svc.Create(&plan))
	return plan
}

func TestListOrdersByPrice(t *testing.T) {
	f := setup(t)
	f.seed(t, "Aspen", 1800)
	f.seed(t, "Birch", 1200)
	f.seed(t, "Cedar", 1500)

	w := testutil.Do(t, f.router, http.MethodGet, "/api/floor-plans", nil)
	require.Equal(t, http.StatusOK, w.Code)

	plans := testutil.Decode[[]models.FloorPlanModel](t, w)
	require.Len(t, plans, 3)
	assert.Equal(t, []int{1200, 1500, 1800}, []int{plans[0].StartingPrice, plans[1].StartingPrice, plans[2].StartingPrice})
	assert.Equal(t, 1.5, plans[0].Bathrooms)
	assert.Contains(t, plans[0].DescriptionHTML, "<strong>Bright</strong>")
}

func TestGetByID(t *testing.T) {
	f := setup(t)
	plan := f.seed(t, "Aspen", 1800)

	w := testutil.Do(t, f.router, http.MethodGet, fmt.Sprintf("/api/floor-plans/%d", plan.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Aspen", testutil.Decode[models.FloorPlanModel](t, w).Name)

	w = testutil.Do(t, f.router, http.MethodGet, "/api/floor-plans/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.Do(t, f.router, http.MethodGet, "/api/floor-plans/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchPricePersistsAndBumpsLastUpdated(t *testing.T) {
	f := setup(t)
	plan := f.seed(t, "Aspen", 1800)
	before := plan.LastUpdated

	f.clock.Advance(time.Hour)
	path := fmt.Sprintf("/api/floor-plans/%d", plan.ID)
	w := testutil.Do(t, f.router, http.MethodPatch, path, gin.H{"startingPrice": 1650})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Do(t, f.router, http.MethodGet, path, nil)
	got := testutil.Decode[models.FloorPlanModel](t, w)
	assert.Equal(t, 1650, got.StartingPrice)
	assert.False(t, got.LastUpdated.Before(before))
	assert.True(t, got.LastUpdated.Equal(f.clock.Now()))
	assert.True(t, got.PromoLastUpdated.Equal(before), "promotion timestamp untouched")
}

func TestPatchLastUpdatedNeverDecreases(t *testing.T) {
	f := setup(t)
	plan := f.seed(t, "Aspen", 1800)

	f.clock.Advance(-24 * time.Hour)
	w := testutil.Do(t, f.router, http.MethodPatch, fmt.Sprintf("/api/floor-plans/%d", plan.ID), gin.H{"startingPrice": 1700})
	require.Equal(t, http.StatusOK, w.Code)

	got := testutil.Decode[models.FloorPlanModel](t, w)
	assert.True(t, got.LastUpdated.Equal(plan.LastUpdated))
}

func TestPatchPromotionBumpsPromoTimestamp(t *testing.T) {
	f := setup(t)
	plan := f.seed(t, "Aspen", 1800)

	f.clock.Advance(time.Hour)
	w := testutil.Do(t, f.router, http.MethodPatch, fmt.Sprintf("/api/floor-plans/%d", plan.ID), gin.H{"promotionAvailable": true})
	require.Equal(t, http.StatusOK, w.Code)

	got := testutil.Decode[models.FloorPlanModel](t, w)
	assert.True(t, got.PromotionAvailable)
	assert.True(t, got.PromoLastUpdated.Equal(f.clock.Now()))
	assert.Equal(t, 1800, got.StartingPrice)
}

func TestPatchInvalidLeavesRowUnchanged(t *testing.T) {
	f := setup(t)
	plan := f.seed(t, "Aspen", 1800)
	path := fmt.Sprintf("/api/floor-plans/%d", plan.ID)

	bodies := []interface{}{
		gin.H{"startingPrice": 0},
		gin.H{"startingPrice": -50},
		gin.H{},
		gin.H{"unrelated": true},
		gin.H{"startingPrice": 0, "promotionAvailable": true},
		`{"startingPrice": "cheap"}`,
	}
	for _, body := range bodies {
		w := testutil.Do(t, f.router, http.MethodPatch, path, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
		assert.NotEmpty(t, testutil.Decode[testutil.ErrorBody](t, w).Errors)
	}

	stored, err := f.svc.GetByID(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800, stored.StartingPrice)
	assert.False(t, stored.PromotionAvailable)
	assert.True(t, stored.LastUpdated.Equal(plan.LastUpdated))
}

func TestPatchMissingPlan(t *testing.T) {
	f := setup(t)
	w := testutil.Do(t, f.router, http.MethodPatch, "/api/floor-plans/42", gin.H{"startingPrice": 1000})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBatchUpdateIsAtomic(t *testing.T) {
	f := setup(t)
	a := f.seed(t, "Aspen", 1800)
	b := f.seed(t, "Birch", 1200)

	w := testutil.Do(t, f.router, http.MethodPatch, "/api/floor-plans", gin.H{"updates": []gin.H{
		{"id": a.ID, "startingPrice": 1750},
		{"id": 999, "startingPrice": 1100},
	}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	stored, _ := f.svc.GetByID(a.ID)
	assert.Equal(t, 1800, stored.StartingPrice, "nothing applied when one id is unknown")

	w = testutil.Do(t, f.router, http.MethodPatch, "/api/floor-plans", gin.H{"updates": []gin.H{
		{"id": a.ID, "startingPrice": 1750},
		{"id": b.ID},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"updates[1]"}, testutil.Decode[testutil.ErrorBody](t, w).Fields())

	w = testutil.Do(t, f.router, http.MethodPatch, "/api/floor-plans", gin.H{"updates": []gin.H{
		{"id": a.ID, "startingPrice": 1750},
		{"id": b.ID, "promotionAvailable": true},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	plans := testutil.Decode[[]models.FloorPlanModel](t, w)
	require.Len(t, plans, 2)
	assert.Equal(t, 1750, plans[0].StartingPrice)
	assert.True(t, plans[1].PromotionAvailable)
}
