package words

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrWordNotFound is returned when a word row does not exist
var ErrWordNotFound = errors.New("word not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new word repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateWord creates a new word in the database
func (r *RepositoryImpl) CreateWord(ctx context.Context, word *models.Word) error {
	if err := r.db.WithContext(ctx).Create(word).Error; err != nil {
		return fmt.Errorf("creating word: %w", err)
	}
	return nil
}

// GetWordByID retrieves a word by its ID
func (r *RepositoryImpl) GetWordByID(ctx context.Context, id uint) (*models.Word, error) {
	var word models.Word
	if err := r.db.WithContext(ctx).First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("getting word: %w", err)
	}
	return &word, nil
}

// ListBySection retrieves all words of one section in time order
func (r *RepositoryImpl) ListBySection(ctx context.Context, sectionID uint) ([]models.Word, error) {
	var words []models.Word
	if err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("starts_at ASC").
		Find(&words).Error; err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	return words, nil
}

// UpdateWord updates an existing word
func (r *RepositoryImpl) UpdateWord(ctx context.Context, word *models.Word) error {
	result := r.db.WithContext(ctx).Save(word)
	if result.Error != nil {
		return fmt.Errorf("updating word: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWordNotFound
	}
	return nil
}

// DeleteWord deletes a word by its ID
func (r *RepositoryImpl) DeleteWord(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Word{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting word: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWordNotFound
	}
	return nil
}

// GetSectionByID retrieves the owning section
func (r *RepositoryImpl) GetSectionByID(ctx context.Context, id uint) (*models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("section not found")
		}
		return nil, fmt.Errorf("getting section: %w", err)
	}
	return &section, nil
}

// UpdateSection persists a rebuilt section
func (r *RepositoryImpl) UpdateSection(ctx context.Context, section *models.Section) error {
	if err := r.db.WithContext(ctx).Save(section).Error; err != nil {
		return fmt.Errorf("updating section: %w", err)
	}
	return nil
}

// GetPartByID retrieves the owning part
func (r *RepositoryImpl) GetPartByID(ctx context.Context, id uint) (*models.Part, error) {
	var part models.Part
	if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("part not found")
		}
		return nil, fmt.Errorf("getting part: %w", err)
	}
	return &part, nil
}

// ListSectionsByPart retrieves all sections of one part in time order
func (r *RepositoryImpl) ListSectionsByPart(ctx context.Context, partID uint) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.WithContext(ctx).
		Where("part_id = ?", partID).
		Order("starts_at ASC").
		Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	return sections, nil
}

// UpdatePart persists a rebuilt part
func (r *RepositoryImpl) UpdatePart(ctx context.Context, part *models.Part) error {
	if err := r.db.WithContext(ctx).Save(part).Error; err != nil {
		return fmt.Errorf("updating part: %w", err)
	}
	return nil
}
