package words

import (
	"context"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/transcript"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	index      Indexer
}

// NewService creates a new word service
func NewService(repository Repository, index Indexer) Service {
	return &ServiceImpl{
		repository: repository,
		index:      index,
	}
}

// CreateWord creates a word and rebuilds the owning section and part text
func (s *ServiceImpl) CreateWord(ctx context.Context, word *models.Word) error {
	if word.SectionID == 0 {
		return fmt.Errorf("Section ID is required")
	}
	if word.StartsAt > word.EndsAt {
		return fmt.Errorf("Start time must not be after end time")
	}

	if err := s.repository.CreateWord(ctx, word); err != nil {
		return err
	}
	return s.rebuildSectionAndPart(ctx, word.SectionID)
}

// GetWordByID retrieves a word by its ID
func (s *ServiceImpl) GetWordByID(ctx context.Context, id uint) (*models.Word, error) {
	return s.repository.GetWordByID(ctx, id)
}

// ListBySection retrieves all words of one section
func (s *ServiceImpl) ListBySection(ctx context.Context, sectionID uint) ([]models.Word, error) {
	return s.repository.ListBySection(ctx, sectionID)
}

// UpdateWord updates a word and rebuilds the owning section and part text
func (s *ServiceImpl) UpdateWord(ctx context.Context, word *models.Word) error {
	if word.StartsAt > word.EndsAt {
		return fmt.Errorf("Start time must not be after end time")
	}

	if err := s.repository.UpdateWord(ctx, word); err != nil {
		return err
	}
	return s.rebuildSectionAndPart(ctx, word.SectionID)
}

// DeleteWord deletes a word and rebuilds the owning section and part text
func (s *ServiceImpl) DeleteWord(ctx context.Context, sectionID, id uint) error {
	if err := s.repository.DeleteWord(ctx, id); err != nil {
		return err
	}
	return s.rebuildSectionAndPart(ctx, sectionID)
}

// rebuildSectionAndPart re-derives the denormalized text bottom-up: the
// section from its current words, then the part from its current sections.
// The part is always the section's own parent, never caller-supplied, so a
// rebuild can never land on an unrelated part. Always a full rebuild from
// children, never an incremental diff.
func (s *ServiceImpl) rebuildSectionAndPart(ctx context.Context, sectionID uint) error {
	section, err := s.repository.GetSectionByID(ctx, sectionID)
	if err != nil {
		return err
	}

	words, err := s.repository.ListBySection(ctx, sectionID)
	if err != nil {
		return err
	}

	section.Text = transcript.SectionText(words)
	if err := s.repository.UpdateSection(ctx, section); err != nil {
		return err
	}

	part, err := s.repository.GetPartByID(ctx, section.PartID)
	if err != nil {
		return err
	}

	sections, err := s.repository.ListSectionsByPart(ctx, section.PartID)
	if err != nil {
		return err
	}

	part.Text = transcript.PartText(sections)
	if err := s.repository.UpdatePart(ctx, part); err != nil {
		return err
	}

	return s.index.UpsertPart(part.ID, part.Text)
}
