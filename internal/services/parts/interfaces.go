package parts

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for part data access
type Repository interface {
	CreatePart(ctx context.Context, part *models.Part) error
	GetPartByID(ctx context.Context, id uint) (*models.Part, error)
	ListByEpisode(ctx context.Context, episodeID uint) ([]models.Part, error)
	UpdatePart(ctx context.Context, part *models.Part) error
	DeletePart(ctx context.Context, id uint) error

	// Neighbor lookups by time within the same episode, used by reflow
	PreviousByTime(ctx context.Context, episodeID uint, startsAt float64) (*models.Part, error)
	NextByTime(ctx context.Context, episodeID uint, startsAt float64) (*models.Part, error)

	// Display aggregate queries
	ListSectionsByPart(ctx context.Context, partID uint) ([]models.Section, error)
	ListWordsBySections(ctx context.Context, sectionIDs []uint) ([]models.Word, error)

	// AllTexts returns every part's text keyed by id, for index rebuilds
	AllTexts(ctx context.Context) (map[uint]string, error)
}

// SectionDisplay pairs a section with its words
type SectionDisplay struct {
	Section models.Section `json:"section"`
	Words   []models.Word  `json:"words"`
}

// Display is the full editor view of one part
type Display struct {
	Part     models.Part      `json:"part"`
	Sections []SectionDisplay `json:"sections"`
}

// Indexer is the slice of the search index the part service needs
type Indexer interface {
	UpsertPart(partID uint, text string) error
	DeletePart(partID uint) error
}

// Service defines the interface for part business logic. Mutations keep
// the search index entry in lockstep with the part's text.
type Service interface {
	CreatePart(ctx context.Context, part *models.Part) error
	GetPartByID(ctx context.Context, id uint) (*models.Part, error)
	ListByEpisode(ctx context.Context, episodeID uint) ([]models.Part, error)
	UpdatePart(ctx context.Context, part *models.Part) error
	DeletePart(ctx context.Context, id uint) error
	GetDisplay(ctx context.Context, id uint) (*Display, error)
	RebuildIndex(ctx context.Context) (int, error)
}
