package reflow

import (
	"github.com/killallgit/podscribe-api/internal/models"
	apperrors "github.com/killallgit/podscribe-api/pkg/errors"
)

// validateSubmission checks the submitted partition against the part's
// current children before any write. The submission must account for every
// word of the part exactly once, may only name sections the part owns, and
// may not contain empty sections.
func validateSubmission(submission Submission, currentSections map[uint]models.Section, currentWords map[uint]models.Word) error {
	seenWords := make(map[uint]bool)
	seenSections := make(map[int64]bool)

	for _, sectionInput := range submission.Sections {
		if len(sectionInput.Words) == 0 {
			return apperrors.New(apperrors.ErrCodeValidation, "every submitted section must contain at least one word")
		}

		switch sectionInput.Move {
		case "", MoveUp, MoveDown, MoveUpNew, MoveDownNew:
		default:
			return apperrors.Newf(apperrors.ErrCodeValidation, "unknown move directive %q", sectionInput.Move)
		}

		if sectionInput.ID > 0 {
			if seenSections[sectionInput.ID] {
				return apperrors.Newf(apperrors.ErrCodeValidation, "section %d is submitted more than once", sectionInput.ID)
			}
			seenSections[sectionInput.ID] = true

			if _, ok := currentSections[uint(sectionInput.ID)]; !ok {
				return apperrors.Newf(apperrors.ErrCodeValidation, "section %d does not belong to this part", sectionInput.ID)
			}
		}

		for _, wordInput := range sectionInput.Words {
			if seenWords[wordInput.ID] {
				return apperrors.Newf(apperrors.ErrCodeValidation, "word %d is submitted more than once", wordInput.ID)
			}
			seenWords[wordInput.ID] = true

			if _, ok := currentWords[wordInput.ID]; !ok {
				return apperrors.Newf(apperrors.ErrCodeValidation, "word %d does not belong to this part", wordInput.ID)
			}
		}
	}

	if len(seenWords) != len(currentWords) {
		return apperrors.New(apperrors.ErrCodeValidation, "submission must account for every word of the part")
	}
	return nil
}
