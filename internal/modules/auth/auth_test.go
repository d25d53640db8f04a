package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/pkg/session"
	"github.com/havenridge/leasing/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, password string) (*gin.Engine, *testutil.StubClock) {
	t.Helper()
	db := testutil.NewTestDB(t)
	clk := testutil.FixedClock()
	store := session.NewStore(db, clk, time.Hour)
	r, api := testutil.NewRouter()
	NewHandler(store, password, nil).RegisterRoutes(api)
	return r, clk
}

func login(t *testing.T, r *gin.Engine, password string) loginResponse {
	t.Helper()
	w := testutil.Do(t, r, http.MethodPost, "/api/admin/login", gin.H{"password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return testutil.Decode[loginResponse](t, w)
}

func TestLoginUnconfigured(t *testing.T) {
	r, _ := setup(t, "")
	w := testutil.Do(t, r, http.MethodPost, "/api/admin/login", gin.H{"password": "anything"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := setup(t, "correct horse")

	w := testutil.Do(t, r, http.MethodPost, "/api/admin/login", gin.H{"password": "correct"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/admin/login", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"password"}, testutil.Decode[testutil.ErrorBody](t, w).Fields())
}

func TestLoginSessionLogout(t *testing.T) {
	r, clk := setup(t, "correct horse")

	res := login(t, r, "correct horse")
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.ExpiresAt.Equal(clk.Now().Add(time.Hour)))

	bearer := "Bearer " + res.Token
	w := testutil.Do(t, r, http.MethodGet, "/api/admin/session", nil, "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, testutil.Decode[sessionResponse](t, w).Authenticated)

	w = testutil.Do(t, r, http.MethodPost, "/api/admin/logout", nil, "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/session", nil, "Authorization", bearer)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/admin/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code, "logout without a token still succeeds")
}

func TestSessionExpires(t *testing.T) {
	r, clk := setup(t, "pw")
	res := login(t, r, "pw")

	clk.Advance(2 * time.Hour)
	w := testutil.Do(t, r, http.MethodGet, "/api/admin/session", nil, "Authorization", "Bearer "+res.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPasswordMatches(t *testing.T) {
	assert.True(t, passwordMatches("abc", "abc"))
	assert.False(t, passwordMatches("abc", "abcd"))
	assert.False(t, passwordMatches("", "abc"))
}
