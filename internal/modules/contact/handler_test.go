package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/config"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/modules/notify"
	"github.com/havenridge/leasing/internal/pkg/mail"
	"github.com/havenridge/leasing/internal/pkg/pagination"
	"github.com/havenridge/leasing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type failingTransport struct {
	attempts atomic.Int32
}

func (f *failingTransport) Name() string { return "failing" }

func (f *failingTransport) Send(context.Context, mail.Message) (mail.Receipt, error) {
	f.attempts.Add(1)
	return mail.Receipt{}, errors.New("dial tcp: connection refused")
}

func setup(t *testing.T, tr mail.Transport) (*gorm.DB, *Handler, *gin.Engine) {
	t.Helper()
	db := testutil.NewTestDB(t)
	n := notify.New(tr, config.MailConfig{Enable: true, From: "site@example.com", NotifyTo: "office@example.com"}, nil)
	h := NewHandler(NewService(db), n, nil)
	r, api := testutil.NewRouter()
	h.RegisterRoutes(api, testutil.NoAuth())
	return db, h, r
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.ContactSubmissionModel{}).Count(&n).Error)
	return n
}

func TestCreateRejectsBadEmail(t *testing.T) {
	tr := &failingTransport{}
	db, h, r := setup(t, tr)

	w := testutil.Do(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":  "Jordan",
		"email": "not-an-email",
		"phone": "5551234567",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode[testutil.ErrorBody](t, w).Fields(), "email")

	h.Wait()
	assert.Zero(t, countRows(t, db))
	assert.Zero(t, tr.attempts.Load())
}

func TestCreateReportsEveryFieldError(t *testing.T) {
	db, _, r := setup(t, &failingTransport{})

	w := testutil.Do(t, r, http.MethodPost, "/api/contact", gin.H{
		"email": "x",
		"phone": "123",
		"type":  "complaint",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.ElementsMatch(t, []string{"name", "email", "phone", "type"}, testutil.Decode[testutil.ErrorBody](t, w).Fields())
	assert.Zero(t, countRows(t, db))
}

func TestScheduleVisitSurvivesMailFailure(t *testing.T) {
	tr := &failingTransport{}
	db, h, r := setup(t, tr)

	w := testutil.Do(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":     "Jordan Lee",
		"email":    "jordan@example.com",
		"phone":    "5551234567",
		"type":     "schedule_visit",
		"metadata": gin.H{"preferredDate": "2024-07-01"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := testutil.Decode[models.ContactSubmissionModel](t, w)
	assert.Equal(t, models.ContactScheduleVisit, created.Type)
	assert.Equal(t, models.ContactStatusNew, created.Status)
	assert.Equal(t, "2024-07-01", created.Metadata["preferredDate"])

	h.Wait()
	assert.EqualValues(t, 1, countRows(t, db))
	assert.EqualValues(t, 1, tr.attempts.Load())
}

func TestCreateDefaultsAndList(t *testing.T) {
	_, h, r := setup(t, &failingTransport{})

	for _, name := range []string{"First", "Second"} {
		w := testutil.Do(t, r, http.MethodPost, "/api/contact", gin.H{
			"name":  name,
			"email": "lead@example.com",
			"phone": "(555) 123-4567",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := testutil.Decode[models.ContactSubmissionModel](t, w)
		assert.Equal(t, models.ContactGeneral, got.Type)
		assert.NotNil(t, got.Metadata)
	}
	h.Wait()

	w := testutil.Do(t, r, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := testutil.Decode[[]models.ContactSubmissionModel](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].Name)
}

func TestListPaged(t *testing.T) {
	db, _, r := setup(t, &failingTransport{})
	svc := NewService(db)
	for i := 0; i < 5; i++ {
		_, err := svc.Create(&CreateSubmissionDTO{
			Name: fmt.Sprintf("Lead %d", i), Email: "lead@example.com", Phone: "5551234567",
		})
		require.NoError(t, err)
	}

	w := testutil.Do(t, r, http.MethodGet, "/api/contact?page=2&size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get(pagination.HeaderTotalCount))
	assert.Equal(t, "3", w.Header().Get(pagination.HeaderTotalPages))
	items := testutil.Decode[[]models.ContactSubmissionModel](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "Lead 2", items[0].Name)

	w = testutil.Do(t, r, http.MethodGet, "/api/contact?page=9&size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
