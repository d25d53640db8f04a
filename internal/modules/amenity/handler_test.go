package amenity

import (
	"net/http"
	"testing"

	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAmenities(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	for _, a := range []models.AmenityModel{
		{Name: "Pool", Category: models.AmenityProperty},
		{Name: "Washer/Dryer", Category: models.AmenityApartment},
		{Name: "Fitness Center", Category: models.AmenityProperty},
		{Name: "Balcony", Category: models.AmenityApartment},
	} {
		require.NoError(t, svc.Create(&a))
	}

	r, api := testutil.NewRouter()
	NewHandler(svc).RegisterRoutes(api)

	w := testutil.Do(t, r, http.MethodGet, "/api/amenities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var names []string
	for _, a := range testutil.Decode[[]models.AmenityModel](t, w) {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Balcony", "Washer/Dryer", "Fitness Center", "Pool"}, names)

	w = testutil.Do(t, r, http.MethodGet, "/api/amenities?category=property", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := testutil.Decode[[]models.AmenityModel](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, models.AmenityProperty, items[0].Category)

	w = testutil.Do(t, r, http.MethodGet, "/api/amenities?category=garage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"category"}, testutil.Decode[testutil.ErrorBody](t, w).Fields())
}
