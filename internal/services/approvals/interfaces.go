package approvals

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for approval data access
type Repository interface {
	CreateApproval(ctx context.Context, approval *models.Approval) error
	GetApproval(ctx context.Context, partID, userID uint) (*models.Approval, error)
	ListByPart(ctx context.Context, partID uint) ([]models.Approval, error)
	ListByParts(ctx context.Context, partIDs []uint) ([]models.Approval, error)
	DeleteApproval(ctx context.Context, partID, userID uint) error
}

// Service defines the interface for approval business logic
type Service interface {
	Approve(ctx context.Context, partID, userID uint) (*models.Approval, error)
	Revoke(ctx context.Context, partID, userID uint) error
	ListByPart(ctx context.Context, partID uint) ([]models.Approval, error)
	ListByParts(ctx context.Context, partIDs []uint) ([]models.Approval, error)
}
