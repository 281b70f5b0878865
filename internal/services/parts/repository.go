package parts

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrPartNotFound is returned when a part row does not exist
var ErrPartNotFound = errors.New("part not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new part repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreatePart creates a new part in the database
func (r *RepositoryImpl) CreatePart(ctx context.Context, part *models.Part) error {
	if err := r.db.WithContext(ctx).Create(part).Error; err != nil {
		return fmt.Errorf("creating part: %w", err)
	}
	return nil
}

// GetPartByID retrieves a part by its ID
func (r *RepositoryImpl) GetPartByID(ctx context.Context, id uint) (*models.Part, error) {
	var part models.Part
	if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, fmt.Errorf("getting part: %w", err)
	}
	return &part, nil
}

// ListByEpisode retrieves all parts of one episode in time order
func (r *RepositoryImpl) ListByEpisode(ctx context.Context, episodeID uint) ([]models.Part, error) {
	var parts []models.Part
	if err := r.db.WithContext(ctx).
		Where("episode_id = ?", episodeID).
		Order("starts_at ASC").
		Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("listing parts: %w", err)
	}
	return parts, nil
}

// UpdatePart updates an existing part
func (r *RepositoryImpl) UpdatePart(ctx context.Context, part *models.Part) error {
	result := r.db.WithContext(ctx).Save(part)
	if result.Error != nil {
		return fmt.Errorf("updating part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPartNotFound
	}
	return nil
}

// DeletePart deletes a part by its ID
func (r *RepositoryImpl) DeletePart(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Part{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPartNotFound
	}
	return nil
}

// PreviousByTime finds the closest part of the same episode that starts
// strictly before startsAt. Nil when the part is already first.
func (r *RepositoryImpl) PreviousByTime(ctx context.Context, episodeID uint, startsAt float64) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).
		Where("episode_id = ? AND starts_at < ?", episodeID, startsAt).
		Order("starts_at DESC").
		First(&part).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding previous part: %w", err)
	}
	return &part, nil
}

// NextByTime finds the closest part of the same episode that starts
// strictly after startsAt. Nil when the part is already last.
func (r *RepositoryImpl) NextByTime(ctx context.Context, episodeID uint, startsAt float64) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).
		Where("episode_id = ? AND starts_at > ?", episodeID, startsAt).
		Order("starts_at ASC").
		First(&part).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding next part: %w", err)
	}
	return &part, nil
}

// ListSectionsByPart retrieves a part's sections in time order
func (r *RepositoryImpl) ListSectionsByPart(ctx context.Context, partID uint) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.WithContext(ctx).
		Where("part_id = ?", partID).
		Order("starts_at ASC").
		Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	return sections, nil
}

// ListWordsBySections retrieves all words of the given sections in time order
func (r *RepositoryImpl) ListWordsBySections(ctx context.Context, sectionIDs []uint) ([]models.Word, error) {
	if len(sectionIDs) == 0 {
		return nil, nil
	}

	var words []models.Word
	if err := r.db.WithContext(ctx).
		Where("section_id IN ?", sectionIDs).
		Order("starts_at ASC").
		Find(&words).Error; err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	return words, nil
}

// AllTexts returns every part's text keyed by id
func (r *RepositoryImpl) AllTexts(ctx context.Context) (map[uint]string, error) {
	var parts []models.Part
	if err := r.db.WithContext(ctx).Select("id", "text").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("loading part texts: %w", err)
	}

	texts := make(map[uint]string, len(parts))
	for _, part := range parts {
		texts[part.ID] = part.Text
	}
	return texts, nil
}
