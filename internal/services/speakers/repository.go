package speakers

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrSpeakerNotFound is returned when a speaker row does not exist
var ErrSpeakerNotFound = errors.New("speaker not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new speaker repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateSpeaker creates a new speaker in the database
func (r *RepositoryImpl) CreateSpeaker(ctx context.Context, speaker *models.Speaker) error {
	if err := r.db.WithContext(ctx).Create(speaker).Error; err != nil {
		return fmt.Errorf("creating speaker: %w", err)
	}
	return nil
}

// GetSpeakerByID retrieves a speaker by its ID
func (r *RepositoryImpl) GetSpeakerByID(ctx context.Context, id uint) (*models.Speaker, error) {
	var speaker models.Speaker
	if err := r.db.WithContext(ctx).First(&speaker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpeakerNotFound
		}
		return nil, fmt.Errorf("getting speaker: %w", err)
	}
	return &speaker, nil
}

// ListSpeakers retrieves all speakers
func (r *RepositoryImpl) ListSpeakers(ctx context.Context) ([]models.Speaker, error) {
	var speakers []models.Speaker
	if err := r.db.WithContext(ctx).Find(&speakers).Error; err != nil {
		return nil, fmt.Errorf("listing speakers: %w", err)
	}
	return speakers, nil
}

// UpdateSpeaker updates an existing speaker
func (r *RepositoryImpl) UpdateSpeaker(ctx context.Context, speaker *models.Speaker) error {
	result := r.db.WithContext(ctx).Save(speaker)
	if result.Error != nil {
		return fmt.Errorf("updating speaker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSpeakerNotFound
	}
	return nil
}

// DeleteSpeaker deletes a speaker by its ID
func (r *RepositoryImpl) DeleteSpeaker(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Speaker{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting speaker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSpeakerNotFound
	}
	return nil
}
