package speakers

import (
	"context"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new speaker service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// CreateSpeaker creates a new speaker with validation
func (s *ServiceImpl) CreateSpeaker(ctx context.Context, speaker *models.Speaker) error {
	if speaker.Name == "" {
		return fmt.Errorf("Name is required")
	}
	return s.repository.CreateSpeaker(ctx, speaker)
}

// GetSpeakerByID retrieves a speaker by its ID
func (s *ServiceImpl) GetSpeakerByID(ctx context.Context, id uint) (*models.Speaker, error) {
	return s.repository.GetSpeakerByID(ctx, id)
}

// ListSpeakers retrieves all speakers
func (s *ServiceImpl) ListSpeakers(ctx context.Context) ([]models.Speaker, error) {
	return s.repository.ListSpeakers(ctx)
}

// UpdateSpeaker updates an existing speaker
func (s *ServiceImpl) UpdateSpeaker(ctx context.Context, speaker *models.Speaker) error {
	if speaker.Name == "" {
		return fmt.Errorf("Name is required")
	}
	return s.repository.UpdateSpeaker(ctx, speaker)
}

// DeleteSpeaker deletes a speaker by its ID
func (s *ServiceImpl) DeleteSpeaker(ctx context.Context, id uint) error {
	return s.repository.DeleteSpeaker(ctx, id)
}
