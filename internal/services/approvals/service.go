package approvals

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new approval service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// Approve records a user's sign-off on a part. Approving twice returns the
// existing approval rather than a unique-constraint error.
func (s *ServiceImpl) Approve(ctx context.Context, partID, userID uint) (*models.Approval, error) {
	if partID == 0 {
		return nil, fmt.Errorf("Part ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("User ID is required")
	}

	existing, err := s.repository.GetApproval(ctx, partID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrApprovalNotFound) {
		return nil, err
	}

	approval := &models.Approval{PartID: partID, UserID: userID}
	if err := s.repository.CreateApproval(ctx, approval); err != nil {
		return nil, err
	}
	return approval, nil
}

// Revoke removes a user's sign-off on a part
func (s *ServiceImpl) Revoke(ctx context.Context, partID, userID uint) error {
	return s.repository.DeleteApproval(ctx, partID, userID)
}

// ListByPart retrieves all approvals on one part
func (s *ServiceImpl) ListByPart(ctx context.Context, partID uint) ([]models.Approval, error) {
	return s.repository.ListByPart(ctx, partID)
}

// ListByParts retrieves all approvals on a set of parts
func (s *ServiceImpl) ListByParts(ctx context.Context, partIDs []uint) ([]models.Approval, error) {
	return s.repository.ListByParts(ctx, partIDs)
}
