package episodespeakers

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for episode-speaker binding data access
type Repository interface {
	CreateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error
	GetEpisodeSpeakerByID(ctx context.Context, id uint) (*models.EpisodeSpeaker, error)
	ListByEpisode(ctx context.Context, episodeID uint) ([]models.EpisodeSpeaker, error)
	UpdateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error
	DeleteEpisodeSpeaker(ctx context.Context, id uint) error
}

// Service defines the interface for episode-speaker binding logic
type Service interface {
	CreateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error
	GetEpisodeSpeakerByID(ctx context.Context, id uint) (*models.EpisodeSpeaker, error)
	ListByEpisode(ctx context.Context, episodeID uint) ([]models.EpisodeSpeaker, error)
	UpdateEpisodeSpeaker(ctx context.Context, episodeSpeaker *models.EpisodeSpeaker) error
	DeleteEpisodeSpeaker(ctx context.Context, id uint) error
}
