package words

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for word data access, plus the parent
// lookups the rebuild cascade needs.
type Repository interface {
	CreateWord(ctx context.Context, word *models.Word) error
	GetWordByID(ctx context.Context, id uint) (*models.Word, error)
	ListBySection(ctx context.Context, sectionID uint) ([]models.Word, error)
	UpdateWord(ctx context.Context, word *models.Word) error
	DeleteWord(ctx context.Context, id uint) error

	GetSectionByID(ctx context.Context, id uint) (*models.Section, error)
	UpdateSection(ctx context.Context, section *models.Section) error
	GetPartByID(ctx context.Context, id uint) (*models.Part, error)
	ListSectionsByPart(ctx context.Context, partID uint) ([]models.Section, error)
	UpdatePart(ctx context.Context, part *models.Part) error
}

// Indexer is the slice of the search index the word service needs
type Indexer interface {
	UpsertPart(partID uint, text string) error
}

// Service defines the interface for word business logic. Every mutation
// rebuilds the owning section's and part's denormalized text and refreshes
// the part's search index entry; the rebuilt part is derived from the
// section's part_id, not taken from the caller.
type Service interface {
	CreateWord(ctx context.Context, word *models.Word) error
	GetWordByID(ctx context.Context, id uint) (*models.Word, error)
	ListBySection(ctx context.Context, sectionID uint) ([]models.Word, error)
	UpdateWord(ctx context.Context, word *models.Word) error
	DeleteWord(ctx context.Context, sectionID, id uint) error
}
