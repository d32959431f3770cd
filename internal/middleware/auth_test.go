package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wares-dev/wares/internal/auth"
	"github.com/wares-dev/wares/internal/models"
	"github.com/wares-dev/wares/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSecret = []byte("test-secret")

func newAuthRouter(t *testing.T) (*gin.Engine, *repository.UserRepository) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(&models.User{}, &models.Item{}, &models.Token{}))

	users := repository.NewUserRepository(conn)

	r := gin.New()
	r.GET("/protected", Authenticate(users, testSecret), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	r.GET("/admin", Authenticate(users, testSecret), RequireSuperuser(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return r, users
}

func get(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)

	if header != "" {
		req.Header.Set("Authorization", header)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "Bearer").Code)
}

func TestAuthenticate_InvalidAndExpiredTokens(t *testing.T) {
	r, users := newAuthRouter(t)

	user, err := users.Create(context.Background(), repository.CreateUser{
		Email:    "a@b.com",
		Password: "longenough1",
	})
	require.NoError(t, err)

	expired, err := auth.GenerateToken(user.ID, testSecret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "Bearer "+expired).Code)

	foreign, err := auth.GenerateToken(user.ID, []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "Bearer "+foreign).Code)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "Bearer not.a.jwt").Code)
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	r, _ := newAuthRouter(t)

	token, err := auth.GenerateToken(999, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "Bearer "+token).Code)
}

func TestAuthenticate_ActiveAndPrivilegeChecks(t *testing.T) {
	r, users := newAuthRouter(t)

	user, err := users.Create(context.Background(), repository.CreateUser{
		Email:    "a@b.com",
		Password: "longenough1",
	})
	require.NoError(t, err)

	token, err := auth.GenerateToken(user.ID, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/protected", "Bearer "+token).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", "Bearer "+token).Code)

	isSuper := true
	_, err = users.Update(context.Background(), user, repository.UpdateUser{IsSuperuser: &isSuper})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, "/admin", "Bearer "+token).Code)

	inactive := false
	_, err = users.Update(context.Background(), user, repository.UpdateUser{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, "/protected", "Bearer "+token).Code)
}
