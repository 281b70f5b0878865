// Package reflow applies an editor's repartition of one part's words into
// a new section layout, optionally pushing sections onto a neighboring or
// freshly created part. All relational writes happen in one transaction;
// search index writes run after commit, keyed by part id, so a failed sync
// can be repaired by a rebuild without touching committed rows.
package reflow

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/transcript"
	apperrors "github.com/killallgit/podscribe-api/pkg/errors"
	"gorm.io/gorm"
)

// Move directives a submitted section may carry. Up and Down reuse the
// neighboring part by time when one exists; UpNew and DownNew always
// create a fresh part next to the original.
const (
	MoveUp      = "up"
	MoveDown    = "down"
	MoveUpNew   = "upnew"
	MoveDownNew = "downnew"
)

// WordInput is one word of the submitted partition. The id must reference
// a word currently owned by the part; the remaining fields replace the
// stored row.
type WordInput struct {
	ID          uint    `json:"id"`
	Text        string  `json:"text"`
	Overwrite   string  `json:"overwrite"`
	Hidden      bool    `json:"hidden"`
	StartsAt    float64 `json:"starts_at"`
	EndsAt      float64 `json:"ends_at"`
	Probability float64 `json:"probability"`
}

// SectionInput is one section of the submitted partition. An ID of zero or
// below requests a new section row.
type SectionInput struct {
	ID    int64       `json:"id"`
	Move  string      `json:"move,omitempty"`
	Words []WordInput `json:"words"`
}

// Submission is the full reflow request for one part
type Submission struct {
	PartType         int            `json:"part_type"`
	EpisodeSpeakerID uint           `json:"episode_speaker_id"`
	Sections         []SectionInput `json:"sections"`
}

// Indexer is the slice of the search index the reflow needs
type Indexer interface {
	UpsertPart(partID uint, text string) error
	DeletePart(partID uint) error
}

// Service applies reflow submissions
type Service struct {
	db    *gorm.DB
	index Indexer
}

// NewService creates a new reflow service
func NewService(db *gorm.DB, index Indexer) *Service {
	return &Service{db: db, index: index}
}

// indexUpsert is one deferred index write, applied after commit
type indexUpsert struct {
	partID uint
	text   string
}

// targetState accumulates the sections moved onto one resolved target part.
// Text blocks are collected in submission order and merged into the target
// once, so several sections moving the same direction keep their order.
type targetState struct {
	part       models.Part
	created    bool
	direction  string
	movedTexts []string
	minStart   float64
	maxEnd     float64
}

// Apply runs the full reflow for one part. The part must belong to the
// episode. On success the relational state is committed and the index holds
// one entry per surviving part with its rebuilt text.
func (s *Service) Apply(ctx context.Context, episodeID, partID uint, submission Submission) error {
	var upserts []indexUpsert
	var deletes []uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var innerErr error
		upserts, deletes, innerErr = s.apply(tx, episodeID, partID, submission)
		return innerErr
	})
	if err != nil {
		return err
	}

	for _, id := range deletes {
		if err := s.index.DeletePart(id); err != nil {
			return err
		}
	}
	for _, upsert := range upserts {
		if err := s.index.UpsertPart(upsert.partID, upsert.text); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) apply(tx *gorm.DB, episodeID, partID uint, submission Submission) ([]indexUpsert, []uint, error) {
	var original models.Part
	err := tx.Where("id = ? AND episode_id = ?", partID, episodeID).First(&original).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperrors.NotFound("part", partID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading part: %w", err)
	}

	currentSections, currentWords, err := loadPartChildren(tx, partID)
	if err != nil {
		return nil, nil, err
	}

	if err := validateSubmission(submission, currentSections, currentWords); err != nil {
		return nil, nil, err
	}

	// Moving sections first, sticky sections after, each group in
	// submission order.
	targets := make(map[string]*targetState)
	var targetOrder []string
	for _, sectionInput := range submission.Sections {
		if sectionInput.Move == "" {
			continue
		}

		target, ok := targets[sectionInput.Move]
		if !ok {
			target, err = s.resolveTarget(tx, &original, sectionInput.Move)
			if err != nil {
				return nil, nil, err
			}
			targets[sectionInput.Move] = target
			targetOrder = append(targetOrder, sectionInput.Move)
		}

		section, err := persistSection(tx, sectionInput, target.part.ID, currentSections, currentWords)
		if err != nil {
			return nil, nil, err
		}

		// The first section seeds both bounds; timestamps may be negative,
		// so the zero values are not usable as extremes.
		target.movedTexts = append(target.movedTexts, section.Text)
		if len(target.movedTexts) == 1 || section.StartsAt < target.minStart {
			target.minStart = section.StartsAt
		}
		if len(target.movedTexts) == 1 || section.EndsAt > target.maxEnd {
			target.maxEnd = section.EndsAt
		}
	}

	var stickySections []models.Section
	for _, sectionInput := range submission.Sections {
		if sectionInput.Move != "" {
			continue
		}

		section, err := persistSection(tx, sectionInput, original.ID, currentSections, currentWords)
		if err != nil {
			return nil, nil, err
		}
		stickySections = append(stickySections, section)
	}

	var upserts []indexUpsert
	for _, direction := range targetOrder {
		target := targets[direction]
		if err := finalizeTarget(tx, target); err != nil {
			return nil, nil, err
		}
		upserts = append(upserts, indexUpsert{partID: target.part.ID, text: target.part.Text})
	}

	if err := deleteUnreferencedSections(tx, submission, currentSections); err != nil {
		return nil, nil, err
	}

	var deletes []uint
	if len(stickySections) == 0 {
		if err := tx.Delete(&original).Error; err != nil {
			return nil, nil, fmt.Errorf("deleting emptied part: %w", err)
		}
		deletes = append(deletes, original.ID)
		return upserts, deletes, nil
	}

	sort.SliceStable(stickySections, func(i, j int) bool {
		return stickySections[i].StartsAt < stickySections[j].StartsAt
	})
	original.StartsAt = stickySections[0].StartsAt
	original.EndsAt = stickySections[len(stickySections)-1].EndsAt
	original.Text = transcript.PartText(stickySections)
	original.PartType = submission.PartType
	if submission.EpisodeSpeakerID != 0 {
		original.EpisodeSpeakerID = submission.EpisodeSpeakerID
	}
	if err := tx.Save(&original).Error; err != nil {
		return nil, nil, fmt.Errorf("updating part: %w", err)
	}
	upserts = append(upserts, indexUpsert{partID: original.ID, text: original.Text})

	return upserts, deletes, nil
}

// loadPartChildren snapshots the part's current sections and words, the
// baseline the submission is validated against.
func loadPartChildren(tx *gorm.DB, partID uint) (map[uint]models.Section, map[uint]models.Word, error) {
	var sections []models.Section
	if err := tx.Where("part_id = ?", partID).Find(&sections).Error; err != nil {
		return nil, nil, fmt.Errorf("loading sections: %w", err)
	}

	sectionsByID := make(map[uint]models.Section, len(sections))
	sectionIDs := make([]uint, 0, len(sections))
	for _, section := range sections {
		sectionsByID[section.ID] = section
		sectionIDs = append(sectionIDs, section.ID)
	}

	wordsByID := make(map[uint]models.Word)
	if len(sectionIDs) > 0 {
		var words []models.Word
		if err := tx.Where("section_id IN ?", sectionIDs).Find(&words).Error; err != nil {
			return nil, nil, fmt.Errorf("loading words: %w", err)
		}
		for _, word := range words {
			wordsByID[word.ID] = word
		}
	}
	return sectionsByID, wordsByID, nil
}

// resolveTarget finds or creates the part a moving section lands on.
// Neighbor lookup is strict by time, so a part created here is never picked
// up as a neighbor by a later section in the same submission.
func (s *Service) resolveTarget(tx *gorm.DB, original *models.Part, direction string) (*targetState, error) {
	if direction == MoveUp || direction == MoveDown {
		neighbor, err := neighborByTime(tx, original, direction)
		if err != nil {
			return nil, err
		}
		if neighbor != nil {
			return &targetState{part: *neighbor, direction: direction}, nil
		}
	}

	part := models.Part{
		EpisodeID:        original.EpisodeID,
		EpisodeSpeakerID: original.EpisodeSpeakerID,
		PartType:         original.PartType,
		StartsAt:         original.StartsAt,
		EndsAt:           original.EndsAt,
	}
	if err := tx.Create(&part).Error; err != nil {
		return nil, fmt.Errorf("creating target part: %w", err)
	}
	return &targetState{part: part, created: true, direction: direction}, nil
}

// neighborByTime returns the adjacent part of the same episode, nil when
// the original is already first or last.
func neighborByTime(tx *gorm.DB, original *models.Part, direction string) (*models.Part, error) {
	query := tx.Where("episode_id = ?", original.EpisodeID)
	if direction == MoveUp {
		query = query.Where("starts_at < ?", original.StartsAt).Order("starts_at DESC")
	} else {
		query = query.Where("starts_at > ?", original.StartsAt).Order("starts_at ASC")
	}

	var neighbor models.Part
	err := query.First(&neighbor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up neighbor part: %w", err)
	}
	return &neighbor, nil
}

// persistSection writes one submitted section and its words under the given
// part. Text, span and pace are rebuilt from the submitted words, never
// taken from the client.
func persistSection(tx *gorm.DB, sectionInput SectionInput, partID uint, currentSections map[uint]models.Section, currentWords map[uint]models.Word) (models.Section, error) {
	words := make([]models.Word, len(sectionInput.Words))
	for i, wordInput := range sectionInput.Words {
		word := currentWords[wordInput.ID]
		word.Text = wordInput.Text
		word.Overwrite = wordInput.Overwrite
		word.Hidden = wordInput.Hidden
		word.StartsAt = wordInput.StartsAt
		word.EndsAt = wordInput.EndsAt
		word.Probability = wordInput.Probability
		words[i] = word
	}

	var section models.Section
	if sectionInput.ID > 0 {
		section = currentSections[uint(sectionInput.ID)]
	}
	section.PartID = partID
	section.Text = transcript.SectionText(words)
	section.StartsAt, section.EndsAt = transcript.SectionSpan(words)
	section.WordsPerSecond = transcript.WordsPerSecond(words)
	if err := tx.Save(&section).Error; err != nil {
		return models.Section{}, fmt.Errorf("saving section: %w", err)
	}

	for i := range words {
		words[i].SectionID = section.ID
		if err := tx.Save(&words[i]).Error; err != nil {
			return models.Section{}, fmt.Errorf("saving word: %w", err)
		}
	}
	return section, nil
}

// finalizeTarget merges the moved text blocks into the target part. A fresh
// part takes exactly the moved span and text; an up neighbor is extended at
// its end, a down neighbor at its start.
func finalizeTarget(tx *gorm.DB, target *targetState) error {
	movedText := joinTexts(target.movedTexts)

	switch {
	case target.created:
		target.part.StartsAt = target.minStart
		target.part.EndsAt = target.maxEnd
		target.part.Text = movedText
	case target.direction == MoveUp:
		target.part.EndsAt = target.maxEnd
		target.part.Text = joinTexts([]string{target.part.Text, movedText})
	default:
		target.part.StartsAt = target.minStart
		target.part.Text = joinTexts([]string{movedText, target.part.Text})
	}

	if err := tx.Save(&target.part).Error; err != nil {
		return fmt.Errorf("updating target part: %w", err)
	}
	return nil
}

// deleteUnreferencedSections removes original sections the submission no
// longer names. Their words were reassigned to submitted sections, so the
// rows are already empty.
func deleteUnreferencedSections(tx *gorm.DB, submission Submission, currentSections map[uint]models.Section) error {
	referenced := make(map[uint]bool)
	for _, sectionInput := range submission.Sections {
		if sectionInput.ID > 0 {
			referenced[uint(sectionInput.ID)] = true
		}
	}

	for id, section := range currentSections {
		if referenced[id] {
			continue
		}
		if err := tx.Delete(&section).Error; err != nil {
			return fmt.Errorf("deleting section: %w", err)
		}
	}
	return nil
}

func joinTexts(texts []string) string {
	joined := ""
	for _, text := range texts {
		if text == "" {
			continue
		}
		if joined == "" {
			joined = text
			continue
		}
		joined = joined + " " + text
	}
	return joined
}
