package matchdb

import (
	"time"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// Match is one scored contest within a competition.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID              int64              `bun:"id,pk,autoincrement"`
	CompetitionID   int64              `bun:"competition_id,notnull"`
	Title           string             `bun:"title,notnull"`
	MatchNumber     int                `bun:"match_number,notnull"`
	Status          matchdomain.Status `bun:"status,notnull"`
	StartedAt       *time.Time         `bun:"started_at"`
	ScoresSubmitted bool               `bun:"scores_submitted,notnull"`
	CreatedAt       time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time          `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// MatchParticipant links a human or bot to a match.
type MatchParticipant struct {
	bun.BaseModel `bun:"table:match_participants,alias:mp"`

	MatchID         int64            `bun:"match_id,pk"`
	ParticipantKind participant.Kind `bun:"participant_kind,pk"`
	ParticipantID   int64            `bun:"participant_id,pk"`
}

// Ref returns the participant the row refers to.
func (p *MatchParticipant) Ref() participant.Ref {
	return participant.Ref{Kind: p.ParticipantKind, ID: p.ParticipantID}
}
