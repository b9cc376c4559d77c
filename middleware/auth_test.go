package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms/models"
	"hrms/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAuth(t *testing.T) (*Auth, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	store := storage.New(db)
	user, err := store.CreateUser(&models.User{
		Username: "hruser",
		Password: "hashed",
		FullName: "HR User",
		Role:     models.RoleHR,
	})
	require.NoError(t, err)

	return NewAuth("test-secret", time.Hour, store), user
}

func TestTokenRoundTrip(t *testing.T) {
	auth, user := newTestAuth(t)

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "hruser", claims.Username)
	assert.Equal(t, models.RoleHR, claims.Role)
}

func TestValidateRejectsForeignToken(t *testing.T) {
	auth, user := newTestAuth(t)
	other := NewAuth("different-secret", time.Hour, nil)

	token, err := other.GenerateToken(user)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func nextHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		user := GetUserFromContext(r.Context())
		require.NotNil(t, user)
		assert.Equal(t, "hruser", user.Username)
	})
}

func TestRequireWithCookie(t *testing.T) {
	auth, user := newTestAuth(t)

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()

	called := false
	auth.Require(nextHandler(t, &called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireWithBearerHeader(t *testing.T) {
	auth, user := newTestAuth(t)

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	called := false
	auth.Require(nextHandler(t, &called)).ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestRequireWithoutToken(t *testing.T) {
	auth, _ := newTestAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	rec := httptest.NewRecorder()

	called := false
	auth.Require(nextHandler(t, &called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestRequireClearsInvalidCookie(t *testing.T) {
	auth, _ := newTestAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
	rec := httptest.NewRecorder()

	called := false
	auth.Require(nextHandler(t, &called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRequireRejectsUnknownPrincipal(t *testing.T) {
	auth, _ := newTestAuth(t)

	// Token is well-formed but its subject was never stored
	ghost := &models.User{ID: 999, Username: "ghost", Role: models.RoleHR}
	token, err := auth.GenerateToken(ghost)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()

	called := false
	auth.Require(nextHandler(t, &called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
