package episodespeakers

import (
	"context"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new episode-speaker service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// CreateEpisodeSpeaker creates a new binding with validation
func (s *ServiceImpl) CreateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error {
	if episodeSpeaker.EpisodeID == 0 {
		return fmt.Errorf("Episode ID is required")
	}
	if episodeSpeaker.SpeakerID == 0 {
		return fmt.Errorf("Speaker ID is required")
	}
	return s.repository.CreateEpisodeSpeaker(ctx, episodeSpeaker)
}

// GetEpisodeSpeakerByID retrieves a binding by its ID
func (s *ServiceImpl) GetEpisodeSpeakerByID(ctx context.Context, id uint) (*models.EpisodeSpeaker, error) {
	return s.repository.GetEpisodeSpeakerByID(ctx, id)
}

// ListByEpisode retrieves all bindings for one episode
func (s *ServiceImpl) ListByEpisode(ctx context.Context, episodeID uint) ([]models.EpisodeSpeaker, error) {
	return s.repository.ListByEpisode(ctx, episodeID)
}

// UpdateEpisodeSpeaker updates an existing binding
func (s *ServiceImpl) UpdateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error {
	if episodeSpeaker.SpeakerID == 0 {
		return fmt.Errorf("Speaker ID is required")
	}
	return s.repository.UpdateEpisodeSpeaker(ctx, episodeSpeaker)
}

// DeleteEpisodeSpeaker deletes a binding. Its parts cascade at the
// database level.
func (s *ServiceImpl) DeleteEpisodeSpeaker(ctx context.Context, id uint) error {
	return s.repository.DeleteEpisodeSpeaker(ctx, id)
}
