package sections

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrSectionNotFound is returned when a section row does not exist
var ErrSectionNotFound = errors.New("section not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new section repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateSection creates a new section in the database
func (r *RepositoryImpl) CreateSection(ctx context.Context, section *models.Section) error {
	if err := r.db.WithContext(ctx).Create(section).Error; err != nil {
		return fmt.Errorf("creating section: %w", err)
	}
	return nil
}

// GetSectionByID retrieves a section by its ID
func (r *RepositoryImpl) GetSectionByID(ctx context.Context, id uint) (*models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("getting section: %w", err)
	}
	return &section, nil
}

// ListByPart retrieves all sections of one part in time order
func (r *RepositoryImpl) ListByPart(ctx context.Context, partID uint) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.WithContext(ctx).
		Where("part_id = ?", partID).
		Order("starts_at ASC").
		Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	return sections, nil
}

// UpdateSection updates an existing section
func (r *RepositoryImpl) UpdateSection(ctx context.Context, section *models.Section) error {
	result := r.db.WithContext(ctx).Save(section)
	if result.Error != nil {
		return fmt.Errorf("updating section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// DeleteSection deletes a section by its ID
func (r *RepositoryImpl) DeleteSection(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Section{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}
