package sections

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for section data access
type Repository interface {
	CreateSection(ctx context.Context, section *models.Section) error
	GetSectionByID(ctx context.Context, id uint) (*models.Section, error)
	ListByPart(ctx context.Context, partID uint) ([]models.Section, error)
	UpdateSection(ctx context.Context, section *models.Section) error
	DeleteSection(ctx context.Context, id uint) error
}

// Service defines the interface for section business logic
type Service interface {
	CreateSection(ctx context.Context, section *models.Section) error
	GetSectionByID(ctx context.Context, id uint) (*models.Section, error)
	ListByPart(ctx context.Context, partID uint) ([]models.Section, error)
	UpdateSection(ctx context.Context, section *models.Section) error
	DeleteSection(ctx context.Context, id uint) error
}
