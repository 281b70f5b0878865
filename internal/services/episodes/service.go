package episodes

import (
	"context"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new episode service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// CreateEpisode creates a new episode with validation
func (s *ServiceImpl) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if episode.Title == "" {
		return fmt.Errorf("Title is required")
	}
	return s.repository.CreateEpisode(ctx, episode)
}

// GetEpisodeByID retrieves an episode by its ID
func (s *ServiceImpl) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	return s.repository.GetEpisodeByID(ctx, id)
}

// ListEpisodes retrieves all episodes
func (s *ServiceImpl) ListEpisodes(ctx context.Context) ([]models.Episode, error) {
	return s.repository.ListEpisodes(ctx)
}

// UpdateEpisode updates an existing episode
func (s *ServiceImpl) UpdateEpisode(ctx context.Context, episode *models.Episode) error {
	if episode.Title == "" {
		return fmt.Errorf("Title is required")
	}
	return s.repository.UpdateEpisode(ctx, episode)
}

// DeleteEpisode deletes an episode. Parts, sections, words, speaker
// bindings and approvals cascade at the database level.
func (s *ServiceImpl) DeleteEpisode(ctx context.Context, id uint) error {
	return s.repository.DeleteEpisode(ctx, id)
}

// GetDisplay returns the full editor view of one episode
func (s *ServiceImpl) GetDisplay(ctx context.Context, id uint) (*Display, error) {
	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parts, err := s.repository.ListPartsByEpisode(ctx, id)
	if err != nil {
		return nil, err
	}

	episodeSpeakers, err := s.repository.ListEpisodeSpeakersByEpisode(ctx, id)
	if err != nil {
		return nil, err
	}

	speakers, err := s.repository.ListSpeakers(ctx)
	if err != nil {
		return nil, err
	}

	return &Display{
		Episode:         *episode,
		Parts:           parts,
		EpisodeSpeakers: episodeSpeakers,
		Speakers:        speakers,
	}, nil
}

// MarkAudioAttached flags the episode as having an uploaded audio file
func (s *ServiceImpl) MarkAudioAttached(ctx context.Context, id uint) (*models.Episode, error) {
	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	episode.HasAudioFile = true
	if err := s.repository.UpdateEpisode(ctx, episode); err != nil {
		return nil, err
	}
	return episode, nil
}
