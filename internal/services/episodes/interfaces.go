package episodes

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for episode data access
type Repository interface {
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	ListEpisodes(ctx context.Context) ([]models.Episode, error)
	UpdateEpisode(ctx context.Context, episode *models.Episode) error
	DeleteEpisode(ctx context.Context, id uint) error

	// Display aggregate queries
	ListPartsByEpisode(ctx context.Context, episodeID uint) ([]models.Part, error)
	ListEpisodeSpeakersByEpisode(ctx context.Context, episodeID uint) ([]models.EpisodeSpeaker, error)
	ListSpeakers(ctx context.Context) ([]models.Speaker, error)
}

// Display aggregates everything the editor needs to render one episode
type Display struct {
	Episode         models.Episode          `json:"episode"`
	Parts           []models.Part           `json:"parts"`
	EpisodeSpeakers []models.EpisodeSpeaker `json:"episode_speakers"`
	Speakers        []models.Speaker        `json:"speakers"`
}

// Service defines the interface for episode business logic
type Service interface {
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	ListEpisodes(ctx context.Context) ([]models.Episode, error)
	UpdateEpisode(ctx context.Context, episode *models.Episode) error
	DeleteEpisode(ctx context.Context, id uint) error
	GetDisplay(ctx context.Context, id uint) (*Display, error)
	MarkAudioAttached(ctx context.Context, id uint) (*models.Episode, error)
}
