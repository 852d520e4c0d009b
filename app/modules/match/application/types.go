package matchservice

import (
	"time"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
)

// CreateMatchRequest carries the input of CreateMatch. ParticipantRefs use the
// signed wire encoding.
type CreateMatchRequest struct {
	CompetitionID   int64   `json:"competition_id"`
	Title           string  `json:"title"`
	ParticipantRefs []int64 `json:"participant_ids"`
}

// ParticipantInfo is a match participant as exposed to callers.
type ParticipantInfo struct {
	Ref  int64            `json:"ref"`
	Kind participant.Kind `json:"kind"`
	Name string           `json:"name"`
}

// ScoreInfo is one ledger entry as exposed to callers.
type ScoreInfo struct {
	Ref       int64  `json:"ref"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Confirmed bool   `json:"confirmed"`
}

// MatchInfo is a match with its participants and ledger.
type MatchInfo struct {
	ID              int64              `json:"id"`
	CompetitionID   int64              `json:"competition_id"`
	Title           string             `json:"title"`
	MatchNumber     int                `json:"match_number"`
	Status          matchdomain.Status `json:"status"`
	StartedAt       *time.Time         `json:"started_at,omitempty"`
	ScoresSubmitted bool               `json:"scores_submitted"`
	Participants    []ParticipantInfo  `json:"participants"`
	Scores          []ScoreInfo        `json:"scores"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
