package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// PostRegister creates a new account
// @Summary      Register a new user
// @Description  Creates an account with no role assigned; an admin grants roles out of band
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration details"
// @Success      201 {object} types.AuthResponse "Account created"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid payload or duplicate email"
// @Router       /api/auth/register [post]
func PostRegister(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user, err := deps.UserService.Register(c.Request.Context(), req.Email, req.Name, req.Password)
		if err != nil {
			log.Printf("[WARN] Registration failed for %s: %v", req.Email, err)
			types.SendBadRequest(c, "Registration failed")
			return
		}

		token, err := deps.AuthService.GenerateToken(user.PID, user.Name, user.Role)
		if err != nil {
			log.Printf("[ERROR] Token generation failed for %s: %v", user.PID, err)
			types.SendInternalError(c, "Failed to generate token")
			return
		}

		c.JSON(http.StatusCreated, types.AuthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Account created"},
			Token:        token,
			PID:          user.PID,
			Name:         user.Name,
			Role:         user.Role,
		})
	}
}
