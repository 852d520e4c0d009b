package scoredb

import (
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// Score is one ledger row: the score a participant posted in a match.
type Score struct {
	bun.BaseModel `bun:"table:match_scores,alias:ms"`

	MatchID         int64            `bun:"match_id,pk"`
	ParticipantKind participant.Kind `bun:"participant_kind,pk"`
	ParticipantID   int64            `bun:"participant_id,pk"`
	Score           int              `bun:"score,notnull"`
	Confirmed       bool             `bun:"confirmed,notnull"`
}

// Ref returns the participant the row belongs to.
func (s *Score) Ref() participant.Ref {
	return participant.Ref{Kind: s.ParticipantKind, ID: s.ParticipantID}
}
