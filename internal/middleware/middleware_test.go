package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"kids-burger-backend/internal/middleware"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func signed(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func staffRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.StaffAuth(secret))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"staff": c.GetString(middleware.StaffIDKey)})
	})
	return router
}

func do(router http.Handler, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStaffAuth_DisabledWithoutSecret(t *testing.T) {
	w := do(staffRouter(""), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffAuth_NoToken(t *testing.T) {
	w := do(staffRouter(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestStaffAuth_InvalidToken(t *testing.T) {
	router := staffRouter(testSecret)

	assert.Equal(t, http.StatusUnauthorized, do(router, "Bearer invalid-token").Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, "Token abc").Code)

	wrongKey := signed(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "staff-1"}, []byte("other-secret"))
	w := do(router, "Bearer "+wrongKey)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "signature is invalid")
}

func TestStaffAuth_ExpiredToken(t *testing.T) {
	token := signed(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "staff-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, []byte(testSecret))

	w := do(staffRouter(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestStaffAuth_RejectsOtherAlgorithms(t *testing.T) {
	token := signed(t, jwt.SigningMethodHS512, jwt.MapClaims{"sub": "staff-1"}, []byte(testSecret))
	assert.Equal(t, http.StatusUnauthorized, do(staffRouter(testSecret), "Bearer "+token).Code)
}

func TestStaffAuth_ValidToken(t *testing.T) {
	token := signed(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "staff-123"}, []byte(testSecret))

	w := do(staffRouter(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"staff":"staff-123"}`, w.Body.String())
}

func TestStaffAuth_MissingSubject(t *testing.T) {
	token := signed(t, jwt.SigningMethodHS256, jwt.MapClaims{"role": "staff"}, []byte(testSecret))
	assert.Equal(t, http.StatusUnauthorized, do(staffRouter(testSecret), "Bearer "+token).Code)
}

func TestSharedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SharedToken("kitchen-token"))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(router, "Bearer kitchen-token").Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, "Bearer nope").Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, "").Code)

	closed := gin.New()
	closed.Use(middleware.SharedToken(""))
	closed.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusUnauthorized, do(closed, "Bearer anything").Code)
}

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(zap.New(core)))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(router, "")
	assert.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[1].ContextMap()["request_id"])
	assert.Equal(t, "/test", entries[1].ContextMap()["route"])
}
