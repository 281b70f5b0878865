// Package importer bulk-loads a transcription document into a blank
// episode: speakers, episode-speaker bindings, parts, sections and words,
// all inside one transaction. Search index entries are written only after
// the transaction commits, since the index is not covered by it.
package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podscribe-api/internal/models"
	"gorm.io/gorm"
)

// ErrEpisodeNotBlank rejects imports into episodes that already hold parts
// or speaker bindings. Import is strictly a one-shot load, never a merge.
var ErrEpisodeNotBlank = errors.New("import only works for blank episodes")

// Transcription is the externally supplied import document
type Transcription struct {
	Transcription []PartInput `json:"transcription"`
}

// PartInput is one speaker-attributed segment of the transcription
type PartInput struct {
	Start    float64        `json:"start"`
	End      float64        `json:"end"`
	Speaker  string         `json:"speaker"`
	Text     string         `json:"text"`
	Sections []SectionInput `json:"sections"`
}

// SectionInput is one sentence-level segment
type SectionInput struct {
	Text           string      `json:"text"`
	Words          []WordInput `json:"words"`
	Start          float64     `json:"start"`
	End            float64     `json:"end"`
	WordsPerSecond float64     `json:"words_per_second"`
}

// WordInput is one timed word with its ASR confidence
type WordInput struct {
	Text        string  `json:"text"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Probability float64 `json:"probability"`
}

// Indexer is the slice of the search index the importer needs
type Indexer interface {
	UpsertPart(partID uint, text string) error
}

// Service runs transcript imports
type Service struct {
	db    *gorm.DB
	index Indexer
}

// NewService creates a new import service
func NewService(db *gorm.DB, index Indexer) *Service {
	return &Service{db: db, index: index}
}

// Import loads the transcription into the episode. The episode must have
// no parts and no speaker bindings. Empty-text parts and sections are
// skipped. Returns the created parts.
func (s *Service) Import(ctx context.Context, episodeID uint, transcription Transcription) ([]models.Part, error) {
	var createdParts []models.Part

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureBlank(tx, episodeID); err != nil {
			return err
		}

		speakerIDs, err := resolveSpeakers(tx, transcription)
		if err != nil {
			return err
		}

		episodeSpeakerIDs := make(map[string]uint, len(speakerIDs))
		for name, speakerID := range speakerIDs {
			episodeSpeaker := models.EpisodeSpeaker{
				EpisodeID: episodeID,
				SpeakerID: speakerID,
			}
			if err := tx.Create(&episodeSpeaker).Error; err != nil {
				return fmt.Errorf("creating episode speaker: %w", err)
			}
			episodeSpeakerIDs[name] = episodeSpeaker.ID
		}

		for _, partInput := range transcription.Transcription {
			if partInput.Text == "" {
				continue
			}

			part := models.Part{
				EpisodeID:        episodeID,
				EpisodeSpeakerID: episodeSpeakerIDs[partInput.Speaker],
				Text:             partInput.Text,
				PartType:         0,
				StartsAt:         partInput.Start,
				EndsAt:           partInput.End,
			}
			if err := tx.Create(&part).Error; err != nil {
				return fmt.Errorf("creating part: %w", err)
			}
			createdParts = append(createdParts, part)

			for _, sectionInput := range partInput.Sections {
				if sectionInput.Text == "" {
					continue
				}

				section := models.Section{
					PartID:         part.ID,
					Text:           sectionInput.Text,
					StartsAt:       sectionInput.Start,
					EndsAt:         sectionInput.End,
					WordsPerSecond: sectionInput.WordsPerSecond,
				}
				if err := tx.Create(&section).Error; err != nil {
					return fmt.Errorf("creating section: %w", err)
				}

				if len(sectionInput.Words) == 0 {
					continue
				}

				wordRows := make([]models.Word, len(sectionInput.Words))
				for i, wordInput := range sectionInput.Words {
					wordRows[i] = models.Word{
						SectionID:   section.ID,
						Text:        wordInput.Text,
						Overwrite:   "",
						StartsAt:    wordInput.Start,
						EndsAt:      wordInput.End,
						Probability: wordInput.Probability,
						Hidden:      false,
					}
				}
				if err := tx.Create(&wordRows).Error; err != nil {
					return fmt.Errorf("creating words: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Index upserts are idempotent and keyed by part id, so a failure here
	// can be repaired by RebuildIndex without touching the committed rows.
	for _, part := range createdParts {
		if err := s.index.UpsertPart(part.ID, part.Text); err != nil {
			return createdParts, err
		}
	}
	return createdParts, nil
}

// ensureBlank fails when the episode already holds parts or speaker bindings
func ensureBlank(tx *gorm.DB, episodeID uint) error {
	var partCount int64
	if err := tx.Model(&models.Part{}).
		Where("episode_id = ?", episodeID).
		Count(&partCount).Error; err != nil {
		return fmt.Errorf("counting parts: %w", err)
	}
	if partCount > 0 {
		return ErrEpisodeNotBlank
	}

	var bindingCount int64
	if err := tx.Model(&models.EpisodeSpeaker{}).
		Where("episode_id = ?", episodeID).
		Count(&bindingCount).Error; err != nil {
		return fmt.Errorf("counting episode speakers: %w", err)
	}
	if bindingCount > 0 {
		return ErrEpisodeNotBlank
	}
	return nil
}

// resolveSpeakers maps every distinct speaker name in the document to a
// speaker id, reusing existing rows by name and creating the rest.
func resolveSpeakers(tx *gorm.DB, transcription Transcription) (map[string]uint, error) {
	speakerIDs := make(map[string]uint)
	for _, partInput := range transcription.Transcription {
		speakerIDs[partInput.Speaker] = 0
	}

	names := make([]string, 0, len(speakerIDs))
	for name := range speakerIDs {
		names = append(names, name)
	}

	var existing []models.Speaker
	if err := tx.Where("name IN ?", names).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("looking up speakers: %w", err)
	}
	for _, speaker := range existing {
		speakerIDs[speaker.Name] = speaker.ID
	}

	for name, id := range speakerIDs {
		if id != 0 {
			continue
		}
		speaker := models.Speaker{Name: name}
		if err := tx.Create(&speaker).Error; err != nil {
			return nil, fmt.Errorf("creating speaker: %w", err)
		}
		speakerIDs[name] = speaker.ID
	}
	return speakerIDs, nil
}
