package parts

import (
	"context"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	index      Indexer
}

// NewService creates a new part service
func NewService(repository Repository, index Indexer) Service {
	return &ServiceImpl{
		repository: repository,
		index:      index,
	}
}

// CreatePart creates a new part and indexes its text
func (s *ServiceImpl) CreatePart(ctx context.Context, part *models.Part) error {
	if part.EpisodeID == 0 {
		return fmt.Errorf("Episode ID is required")
	}
	if part.EpisodeSpeakerID == 0 {
		return fmt.Errorf("Episode speaker ID is required")
	}
	if part.StartsAt > part.EndsAt {
		return fmt.Errorf("Start time must not be after end time")
	}

	if err := s.repository.CreatePart(ctx, part); err != nil {
		return err
	}
	return s.index.UpsertPart(part.ID, part.Text)
}

// GetPartByID retrieves a part by its ID
func (s *ServiceImpl) GetPartByID(ctx context.Context, id uint) (*models.Part, error) {
	return s.repository.GetPartByID(ctx, id)
}

// ListByEpisode retrieves all parts of one episode
func (s *ServiceImpl) ListByEpisode(ctx context.Context, episodeID uint) ([]models.Part, error) {
	return s.repository.ListByEpisode(ctx, episodeID)
}

// UpdatePart updates an existing part and its index entry
func (s *ServiceImpl) UpdatePart(ctx context.Context, part *models.Part) error {
	if part.StartsAt > part.EndsAt {
		return fmt.Errorf("Start time must not be after end time")
	}

	if err := s.repository.UpdatePart(ctx, part); err != nil {
		return err
	}
	return s.index.UpsertPart(part.ID, part.Text)
}

// DeletePart deletes a part and removes its index entry. Sections, words
// and approvals cascade at the database level; the index entry is removed
// explicitly since the index is not covered by the relational store.
func (s *ServiceImpl) DeletePart(ctx context.Context, id uint) error {
	if err := s.repository.DeletePart(ctx, id); err != nil {
		return err
	}
	return s.index.DeletePart(id)
}

// GetDisplay returns the part with its sections and their words
func (s *ServiceImpl) GetDisplay(ctx context.Context, id uint) (*Display, error) {
	part, err := s.repository.GetPartByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sections, err := s.repository.ListSectionsByPart(ctx, id)
	if err != nil {
		return nil, err
	}

	sectionIDs := make([]uint, len(sections))
	for i, section := range sections {
		sectionIDs[i] = section.ID
	}

	words, err := s.repository.ListWordsBySections(ctx, sectionIDs)
	if err != nil {
		return nil, err
	}

	displaySections := make([]SectionDisplay, len(sections))
	for i, section := range sections {
		display := SectionDisplay{Section: section}
		for _, word := range words {
			if word.SectionID == section.ID {
				display.Words = append(display.Words, word)
			}
		}
		displaySections[i] = display
	}

	return &Display{Part: *part, Sections: displaySections}, nil
}

// RebuildIndex re-indexes every part from the database, returning the
// number of indexed parts. Used when the index and the relational store
// diverge.
func (s *ServiceImpl) RebuildIndex(ctx context.Context) (int, error) {
	texts, err := s.repository.AllTexts(ctx)
	if err != nil {
		return 0, err
	}

	type rebuilder interface {
		RebuildFrom(parts map[uint]string) error
	}
	if batch, ok := s.index.(rebuilder); ok {
		return len(texts), batch.RebuildFrom(texts)
	}

	for id, text := range texts {
		if err := s.index.UpsertPart(id, text); err != nil {
			return 0, err
		}
	}
	return len(texts), nil
}
