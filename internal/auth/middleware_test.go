package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := GenerateAccessToken(1, "carlos", RoleUser, testSecret)
	require.NoError(t, err)

	router := protectedRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := protectedRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := protectedRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	refresh, err := GenerateRefreshToken(1, "carlos", RoleUser, testSecret)
	require.NoError(t, err)

	router := protectedRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{name: "admin allowed", role: RoleAdmin, allowed: []string{RoleAdmin, RoleSuperAdmin}, wantCode: http.StatusOK},
		{name: "super admin allowed", role: RoleSuperAdmin, allowed: []string{RoleAdmin, RoleSuperAdmin}, wantCode: http.StatusOK},
		{name: "plain user forbidden", role: RoleUser, allowed: []string{RoleAdmin, RoleSuperAdmin}, wantCode: http.StatusForbidden},
		{name: "admin not super admin", role: RoleAdmin, allowed: []string{RoleSuperAdmin}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateAccessToken(1, "carlos", tt.role, testSecret)
			require.NoError(t, err)

			router := protectedRouter(AuthMiddleware(testSecret), RequireRole(tt.allowed...))

			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
