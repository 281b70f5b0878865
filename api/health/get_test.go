package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func() *types.Dependencies
		expectedDBStat string
	}{
		{
			name: "healthy with database",
			setupDeps: func() *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				return &types.Dependencies{DB: db}
			},
			expectedDBStat: "healthy",
		},
		{
			name: "healthy without database",
			setupDeps: func() *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedDBStat: "not configured",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func() *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)

				sqlDB, err := db.DB.DB()
				require.NoError(t, err)
				require.NoError(t, sqlDB.Close())
				return &types.Dependencies{DB: db}
			},
			expectedDBStat: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			deps := tt.setupDeps()
			Get(deps)(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "ok", response["status"])
			assert.NotEmpty(t, response["timestamp"])

			dbStatus, ok := response["database"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.expectedDBStat, dbStatus["status"])

			if deps.DB != nil && deps.DB.DB != nil {
				if sqlDB, err := deps.DB.DB.DB(); err == nil {
					sqlDB.Close()
				}
			}
		})
	}
}

func TestGetDatabaseStatus(t *testing.T) {
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	defer func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	status := getDatabaseStatus(&types.Dependencies{DB: db})
	assert.Equal(t, "healthy", status["status"])
}
