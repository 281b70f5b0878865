package types

import (
	"github.com/killallgit/podscribe-api/internal/database"
	"github.com/killallgit/podscribe-api/internal/services/approvals"
	"github.com/killallgit/podscribe-api/internal/services/audiostore"
	"github.com/killallgit/podscribe-api/internal/services/auth"
	"github.com/killallgit/podscribe-api/internal/services/episodes"
	"github.com/killallgit/podscribe-api/internal/services/episodespeakers"
	"github.com/killallgit/podscribe-api/internal/services/importer"
	"github.com/killallgit/podscribe-api/internal/services/parts"
	"github.com/killallgit/podscribe-api/internal/services/reflow"
	"github.com/killallgit/podscribe-api/internal/services/searchindex"
	"github.com/killallgit/podscribe-api/internal/services/sections"
	"github.com/killallgit/podscribe-api/internal/services/speakers"
	"github.com/killallgit/podscribe-api/internal/services/users"
	"github.com/killallgit/podscribe-api/internal/services/words"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                    *database.DB
	AuthService           *auth.Service
	UserService           users.Service
	EpisodeService        episodes.Service
	SpeakerService        speakers.Service
	EpisodeSpeakerService episodespeakers.Service
	PartService           parts.Service
	SectionService        sections.Service
	WordService           words.Service
	ApprovalService       approvals.Service
	ImportService         *importer.Service
	ReflowService         *reflow.Service
	SearchIndex           *searchindex.Index
	AudioStore            *audiostore.Store
	Version               string
}
