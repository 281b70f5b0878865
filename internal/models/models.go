package models

import (
	"time"

	"gorm.io/gorm"
)

// Episode represents one podcast episode under transcription
type Episode struct {
	gorm.Model
	Title        string     `json:"title" gorm:"not null"`
	Link         string     `json:"link"`
	Description  string     `json:"description" gorm:"type:text"`
	Filename     string     `json:"filename"`
	ExternalID   string     `json:"external_id" gorm:"index"`
	PublishedAt  *time.Time `json:"published_at"`
	HasAudioFile bool       `json:"has_audio_file" gorm:"default:false"`

	EpisodeSpeakers []EpisodeSpeaker `json:"episode_speakers,omitempty" gorm:"foreignKey:EpisodeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Parts           []Part           `json:"parts,omitempty" gorm:"foreignKey:EpisodeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Speaker is a person that can appear on any number of episodes
type Speaker struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null;index"`
	Description string `json:"description"`
}

// EpisodeSpeaker binds a speaker to an episode. Parts reference this join
// row rather than the global speaker, so "who said it" is always scoped to
// one episode.
type EpisodeSpeaker struct {
	gorm.Model
	EpisodeID uint `json:"episode_id" gorm:"not null;index"`
	SpeakerID uint `json:"speaker_id" gorm:"not null;index"`

	Episode Episode `json:"-" gorm:"foreignKey:EpisodeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Speaker Speaker `json:"-" gorm:"foreignKey:SpeakerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Parts   []Part  `json:"parts,omitempty" gorm:"foreignKey:EpisodeSpeakerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Part is a contiguous spoken segment attributed to one speaker.
// Text is denormalized: always the space-joined concatenation of its
// sections' text in ascending starts_at order.
type Part struct {
	gorm.Model
	EpisodeID        uint    `json:"episode_id" gorm:"not null;index"`
	EpisodeSpeakerID uint    `json:"episode_speaker_id" gorm:"not null;index"`
	Text             string  `json:"text" gorm:"type:text"`
	PartType         int     `json:"part_type" gorm:"default:0"`
	StartsAt         float64 `json:"starts_at"`
	EndsAt           float64 `json:"ends_at"`

	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:PartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Section is a sub-segment of a part, usually one sentence.
// Text is denormalized from its non-hidden words.
type Section struct {
	gorm.Model
	PartID         uint    `json:"part_id" gorm:"not null;index"`
	Text           string  `json:"text" gorm:"type:text"`
	StartsAt       float64 `json:"starts_at"`
	EndsAt         float64 `json:"ends_at"`
	WordsPerSecond float64 `json:"words_per_second"`

	Words []Word `json:"words,omitempty" gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Word is the smallest timed transcript unit. Overwrite holds a manual
// correction (empty means none); hidden words are excluded from the
// reconstructed section text.
type Word struct {
	gorm.Model
	SectionID   uint    `json:"section_id" gorm:"not null;index"`
	Text        string  `json:"text"`
	Overwrite   string  `json:"overwrite"`
	StartsAt    float64 `json:"starts_at"`
	EndsAt      float64 `json:"ends_at"`
	Probability float64 `json:"probability"`
	Hidden      bool    `json:"hidden" gorm:"default:false"`
}

// Approval records one user's sign-off on a part. At most one per
// (part, user) pair.
type Approval struct {
	gorm.Model
	PartID uint `json:"part_id" gorm:"not null;uniqueIndex:idx_approvals_part_user"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_approvals_part_user"`

	Part Part `json:"-" gorm:"foreignKey:PartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Role levels carried in user rows and token claims. Strictly ordered:
// admin implies contributor implies reader.
const (
	RoleNone        = 0
	RoleReader      = 1
	RoleContributor = 2
	RoleAdmin       = 3
)

// User represents an editor account
type User struct {
	gorm.Model
	PID          string `json:"pid" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	APIKey       string `json:"-" gorm:"uniqueIndex"`
	Name         string `json:"name" gorm:"not null"`
	Role         int    `json:"role" gorm:"default:0"`
}

// TableName returns the table name for the EpisodeSpeaker model
func (EpisodeSpeaker) TableName() string {
	return "episode_speakers"
}

// AllModels lists every entity for AutoMigrate, parents before children so
// foreign keys resolve in order.
func AllModels() []any {
	return []any{
		&User{},
		&Episode{},
		&Speaker{},
		&EpisodeSpeaker{},
		&Part{},
		&Section{},
		&Word{},
		&Approval{},
	}
}
