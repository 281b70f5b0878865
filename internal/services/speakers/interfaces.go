package speakers

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for speaker data access
type Repository interface {
	CreateSpeaker(ctx context.Context, speaker *models.Speaker) error
	GetSpeakerByID(ctx context.Context, id uint) (*models.Speaker, error)
	ListSpeakers(ctx context.Context) ([]models.Speaker, error)
	UpdateSpeaker(ctx context.Context, speaker *models.Speaker) error
	DeleteSpeaker(ctx context.Context, id uint) error
}

// Service defines the interface for speaker business logic
type Service interface {
	CreateSpeaker(ctx context.Context, speaker *models.Speaker) error
	GetSpeakerByID(ctx context.Context, id uint) (*models.Speaker, error)
	ListSpeakers(ctx context.Context) ([]models.Speaker, error)
	UpdateSpeaker(ctx context.Context, speaker *models.Speaker) error
	DeleteSpeaker(ctx context.Context, id uint) error
}
