package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthDeps(t *testing.T) *types.Dependencies {
	t.Helper()
	svc, err := auth.NewService("test-secret", time.Hour)
	require.NoError(t, err)
	return &types.Dependencies{AuthService: svc}
}

func protectedRouter(deps *types.Dependencies, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(deps)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "protected resource"})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestRequireAuth(t *testing.T) {
	deps := newAuthDeps(t)
	router := protectedRouter(deps)

	token, err := deps.AuthService.GenerateToken("pid-1", "Alice", models.RoleReader)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"missing bearer prefix", token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	deps := newAuthDeps(t)

	tests := []struct {
		name       string
		role       int
		check      func(role int) error
		wantStatus int
	}{
		{"reader passes reader gate", models.RoleReader, auth.CheckReader, http.StatusOK},
		{"reader fails contributor gate", models.RoleReader, auth.CheckContributor, http.StatusUnauthorized},
		{"contributor passes contributor gate", models.RoleContributor, auth.CheckContributor, http.StatusOK},
		{"contributor fails admin gate", models.RoleContributor, auth.CheckAdmin, http.StatusUnauthorized},
		{"admin passes every gate", models.RoleAdmin, auth.CheckAdmin, http.StatusOK},
		{"no role fails reader gate", models.RoleNone, auth.CheckReader, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(deps, RequireRole(tt.check))

			token, err := deps.AuthService.GenerateToken("pid-1", "Alice", tt.role)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireRole(auth.CheckReader), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var rateLimiters sync.Map
	cleanupStop := make(chan struct{})
	defer close(cleanupStop)
	var cleanupInitialized sync.Once

	router := gin.New()
	router.GET("/limited", PerClientRateLimit(&rateLimiters, cleanupStop, &cleanupInitialized, 1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	// Burst of 2, then the third request in the same instant is rejected
	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
}

func TestCORSPreflights(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.GET("/resource", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
