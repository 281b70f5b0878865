package sections

import (
	"context"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new section service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// CreateSection creates a new section with validation
func (s *ServiceImpl) CreateSection(ctx context.Context, section *models.Section) error {
	if section.PartID == 0 {
		return fmt.Errorf("Part ID is required")
	}
	if section.StartsAt > section.EndsAt {
		return fmt.Errorf("Start time must not be after end time")
	}
	return s.repository.CreateSection(ctx, section)
}

// GetSectionByID retrieves a section by its ID
func (s *ServiceImpl) GetSectionByID(ctx context.Context, id uint) (*models.Section, error) {
	return s.repository.GetSectionByID(ctx, id)
}

// ListByPart retrieves all sections of one part
func (s *ServiceImpl) ListByPart(ctx context.Context, partID uint) ([]models.Section, error) {
	return s.repository.ListByPart(ctx, partID)
}

// UpdateSection updates an existing section
func (s *ServiceImpl) UpdateSection(ctx context.Context, section *models.Section) error {
	if section.StartsAt > section.EndsAt {
		return fmt.Errorf("Start time must not be after end time")
	}
	return s.repository.UpdateSection(ctx, section)
}

// DeleteSection deletes a section. Its words cascade at the database level.
func (s *ServiceImpl) DeleteSection(ctx context.Context, id uint) error {
	return s.repository.DeleteSection(ctx, id)
}
