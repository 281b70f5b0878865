package episodespeakers

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrEpisodeSpeakerNotFound is returned when a binding row does not exist
var ErrEpisodeSpeakerNotFound = errors.New("episode speaker not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new episode-speaker repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateEpisodeSpeaker creates a new binding in the database
func (r *RepositoryImpl) CreateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error {
	if err := r.db.WithContext(ctx).Create(episodeSpeaker).Error; err != nil {
		return fmt.Errorf("creating episode speaker: %w", err)
	}
	return nil
}

// GetEpisodeSpeakerByID retrieves a binding by its ID
func (r *RepositoryImpl) GetEpisodeSpeakerByID(ctx context.Context, id uint) (*models.EpisodeSpeaker, error) {
	var episodeSpeaker models.EpisodeSpeaker
	if err := r.db.WithContext(ctx).First(&episodeSpeaker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEpisodeSpeakerNotFound
		}
		return nil, fmt.Errorf("getting episode speaker: %w", err)
	}
	return &episodeSpeaker, nil
}

// ListByEpisode retrieves all bindings for one episode
func (r *RepositoryImpl) ListByEpisode(ctx context.Context, episodeID uint) ([]models.EpisodeSpeaker, error) {
	var episodeSpeakers []models.EpisodeSpeaker
	if err := r.db.WithContext(ctx).
		Where("episode_id = ?", episodeID).
		Find(&episodeSpeakers).Error; err != nil {
		return nil, fmt.Errorf("listing episode speakers: %w", err)
	}
	return episodeSpeakers, nil
}

// UpdateEpisodeSpeaker updates an existing binding
func (r *RepositoryImpl) UpdateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error {
	result := r.db.WithContext(ctx).Save(episodeSpeaker)
	if result.Error != nil {
		return fmt.Errorf("updating episode speaker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEpisodeSpeakerNotFound
	}
	return nil
}

// DeleteEpisodeSpeaker deletes a binding by its ID
func (r *RepositoryImpl) DeleteEpisodeSpeaker(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EpisodeSpeaker{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting episode speaker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEpisodeSpeakerNotFound
	}
	return nil
}
