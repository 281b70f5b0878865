package approvals

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrApprovalNotFound is returned when no approval exists for the pair
var ErrApprovalNotFound = errors.New("approval not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new approval repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateApproval creates a new approval in the database
func (r *RepositoryImpl) CreateApproval(ctx context.Context, approval *models.Approval) error {
	if err := r.db.WithContext(ctx).Create(approval).Error; err != nil {
		return fmt.Errorf("creating approval: %w", err)
	}
	return nil
}

// GetApproval retrieves the approval for one (part, user) pair
func (r *RepositoryImpl) GetApproval(ctx context.Context, partID, userID uint) (*models.Approval, error) {
	var approval models.Approval
	err := r.db.WithContext(ctx).
		Where("part_id = ? AND user_id = ?", partID, userID).
		First(&approval).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApprovalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting approval: %w", err)
	}
	return &approval, nil
}

// ListByPart retrieves all approvals on one part
func (r *RepositoryImpl) ListByPart(ctx context.Context, partID uint) ([]models.Approval, error) {
	var approvals []models.Approval
	if err := r.db.WithContext(ctx).
		Where("part_id = ?", partID).
		Find(&approvals).Error; err != nil {
		return nil, fmt.Errorf("listing approvals: %w", err)
	}
	return approvals, nil
}

// ListByParts retrieves all approvals on a set of parts
func (r *RepositoryImpl) ListByParts(ctx context.Context, partIDs []uint) ([]models.Approval, error) {
	if len(partIDs) == 0 {
		return nil, nil
	}

	var approvals []models.Approval
	if err := r.db.WithContext(ctx).
		Where("part_id IN ?", partIDs).
		Find(&approvals).Error; err != nil {
		return nil, fmt.Errorf("listing approvals: %w", err)
	}
	return approvals, nil
}

// DeleteApproval removes the approval for one (part, user) pair
func (r *RepositoryImpl) DeleteApproval(ctx context.Context, partID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("part_id = ? AND user_id = ?", partID, userID).
		Delete(&models.Approval{})
	if result.Error != nil {
		return fmt.Errorf("deleting approval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrApprovalNotFound
	}
	return nil
}
