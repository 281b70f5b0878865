package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// PostLogin exchanges credentials for a bearer token
// @Summary      Log in
// @Description  Verifies email and password and returns a signed bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} types.AuthResponse "Signed token"
// @Failure      401 {object} types.ErrorResponse "Invalid credentials"
// @Router       /api/auth/login [post]
func PostLogin(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user, err := deps.UserService.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			types.SendUnauthorized(c, "Invalid credentials")
			return
		}

		token, err := deps.AuthService.GenerateToken(user.PID, user.Name, user.Role)
		if err != nil {
			types.SendInternalError(c, "Failed to generate token")
			return
		}

		c.JSON(http.StatusOK, types.AuthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Logged in"},
			Token:        token,
			PID:          user.PID,
			Name:         user.Name,
			Role:         user.Role,
		})
	}
}
