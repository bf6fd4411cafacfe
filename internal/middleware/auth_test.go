package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/auth"
	"github.com/harborview/marina-api/internal/constants"
	"github.com/harborview/marina-api/internal/models"
	"github.com/harborview/marina-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func tokenGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// The verifier is only reached once a bearer token is present.
	r.GET("/protected", RequireToken(auth.NewVerifier(nil, "", "")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireTokenMissingHeader(t *testing.T) {
	r := tokenGateRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header is missing", errorMessage(t, w))
}

func TestRequireTokenMalformedHeader(t *testing.T) {
	r := tokenGateRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "tokenwithoutscheme")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid header: Unable to parse authentication", errorMessage(t, w))
}

func newUserDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Boat{}, &models.Load{}))
	return db
}

func resolveRouter(db *gorm.DB, sub string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeySubject, sub)
		c.Next()
	})
	r.GET("/whoami", ResolveUser(repository.NewUserRepository(db)), func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func TestResolveUserKnownSubject(t *testing.T) {
	db := newUserDB(t)
	user := &models.User{Name: "Alice", Sub: "auth0|alice"}
	require.NoError(t, db.Create(user).Error)

	r := resolveRouter(db, "auth0|alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(user.ID), body["id"])
}

func TestResolveUserUnknownSubject(t *testing.T) {
	db := newUserDB(t)

	r := resolveRouter(db, "auth0|stranger")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not authorized to access this resource", errorMessage(t, w))
}
