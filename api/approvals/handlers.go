package approvals

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
	approvalsvc "github.com/killallgit/podscribe-api/internal/services/approvals"
)

// currentUserID resolves the authenticated user's database id from the
// token claims
func currentUserID(c *gin.Context, deps *types.Dependencies) (uint, bool) {
	claims := types.CurrentClaims(c)
	if claims == nil {
		types.SendUnauthorized(c, "Authentication required")
		return 0, false
	}

	user, err := deps.UserService.GetByPID(c.Request.Context(), claims.PID)
	if err != nil {
		types.SendUnauthorized(c, "Unknown user")
		return 0, false
	}
	return user.ID, true
}

// GetAll lists the approvals on one part
// @Summary      List approvals
// @Tags         approvals
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Success      200 {array} models.Approval
// @Router       /api/episodes/{episode_id}/parts/{part_id}/approvals [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		partID, ok := types.ParseUintParam(c, "part_id")
		if !ok {
			return
		}

		approvals, err := deps.ApprovalService.ListByPart(c.Request.Context(), partID)
		if err != nil {
			types.SendInternalError(c, "Failed to list approvals")
			return
		}
		types.SendSuccess(c, approvals)
	}
}

// Post records the caller's approval of a part. Approving twice is a no-op
// that returns the existing approval.
// @Summary      Approve a part
// @Tags         approvals
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Success      201 {object} models.Approval
// @Failure      401 {object} types.ErrorResponse "Missing token or insufficient role"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/approvals [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		partID, ok := types.ParseUintParam(c, "part_id")
		if !ok {
			return
		}
		userID, ok := currentUserID(c, deps)
		if !ok {
			return
		}

		approval, err := deps.ApprovalService.Approve(c.Request.Context(), partID, userID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, approval)
	}
}

// Delete revokes the caller's approval of a part
// @Summary      Revoke an approval
// @Tags         approvals
// @Security     BearerAuth
// @Produce      json
// @Param        episode_id path int true "Episode ID"
// @Param        part_id path int true "Part ID"
// @Success      204 "Approval revoked"
// @Failure      404 {object} types.ErrorResponse "No approval to revoke"
// @Router       /api/episodes/{episode_id}/parts/{part_id}/approvals [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		partID, ok := types.ParseUintParam(c, "part_id")
		if !ok {
			return
		}
		userID, ok := currentUserID(c, deps)
		if !ok {
			return
		}

		if err := deps.ApprovalService.Revoke(c.Request.Context(), partID, userID); err != nil {
			if errors.Is(err, approvalsvc.ErrApprovalNotFound) {
				types.SendNotFound(c, "No approval to revoke")
				return
			}
			types.SendInternalError(c, "Failed to revoke approval")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
