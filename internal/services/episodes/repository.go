package episodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrEpisodeNotFound is returned when an episode row does not exist
var ErrEpisodeNotFound = errors.New("episode not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new episode repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateEpisode creates a new episode in the database
func (r *RepositoryImpl) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

// GetEpisodeByID retrieves an episode by its ID
func (r *RepositoryImpl) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

// ListEpisodes retrieves all episodes
func (r *RepositoryImpl) ListEpisodes(ctx context.Context) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	return episodes, nil
}

// UpdateEpisode updates an existing episode
func (r *RepositoryImpl) UpdateEpisode(ctx context.Context, episode *models.Episode) error {
	result := r.db.WithContext(ctx).Save(episode)
	if result.Error != nil {
		return fmt.Errorf("updating episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEpisodeNotFound
	}
	return nil
}

// ListPartsByEpisode retrieves an episode's parts in time order
func (r *RepositoryImpl) ListPartsByEpisode(ctx context.Context, episodeID uint) ([]models.Part, error) {
	var parts []models.Part
	if err := r.db.WithContext(ctx).
		Where("episode_id = ?", episodeID).
		Order("starts_at ASC").
		Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("listing parts for episode: %w", err)
	}
	return parts, nil
}

// ListEpisodeSpeakersByEpisode retrieves the speaker bindings for an episode
func (r *RepositoryImpl) ListEpisodeSpeakersByEpisode(ctx context.Context, episodeID uint) ([]models.EpisodeSpeaker, error) {
	var episodeSpeakers []models.EpisodeSpeaker
	if err := r.db.WithContext(ctx).
		Where("episode_id = ?", episodeID).
		Find(&episodeSpeakers).Error; err != nil {
		return nil, fmt.Errorf("listing episode speakers: %w", err)
	}
	return episodeSpeakers, nil
}

// ListSpeakers retrieves all speakers
func (r *RepositoryImpl) ListSpeakers(ctx context.Context) ([]models.Speaker, error) {
	var speakers []models.Speaker
	if err := r.db.WithContext(ctx).Find(&speakers).Error; err != nil {
		return nil, fmt.Errorf("listing speakers: %w", err)
	}
	return speakers, nil
}

// DeleteEpisode deletes an episode by its ID
func (r *RepositoryImpl) DeleteEpisode(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Episode{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEpisodeNotFound
	}
	return nil
}
