package episodes

import "time"

// EpisodeRequest is the create/update payload
type EpisodeRequest struct {
	Title        string     `json:"title" binding:"required"`
	Link         string     `json:"link"`
	Description  string     `json:"description"`
	Filename     string     `json:"filename"`
	ExternalID   string     `json:"external_id"`
	PublishedAt  *time.Time `json:"published_at"`
	HasAudioFile bool       `json:"has_audio_file"`
}
