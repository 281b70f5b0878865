package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// GetCurrent returns the authenticated user
// @Summary      Get current user
// @Description  Returns the account behind the presented bearer token
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.CurrentUserResponse
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Router       /api/auth/current [get]
func GetCurrent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := types.CurrentClaims(c)
		if claims == nil {
			types.SendUnauthorized(c, "Authentication required")
			return
		}

		user, err := deps.UserService.GetByPID(c.Request.Context(), claims.PID)
		if err != nil {
			types.SendUnauthorized(c, "Unknown user")
			return
		}

		c.JSON(http.StatusOK, types.CurrentUserResponse{
			PID:   user.PID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
	}
}
