package matchdb

import (
	"context"

	matchdomain "github.com/Black-And-White-Club/matchday/app/modules/match/domain"
	"github.com/Black-And-White-Club/matchday/app/shared/participant"
	"github.com/uptrace/bun"
)

// Repository defines the contract for match persistence.
type Repository interface {
	// Create inserts a match and sets its id.
	Create(ctx context.Context, db bun.IDB, match *Match) error

	// GetByID retrieves a match by id.
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Match, error)

	// LockByID retrieves a match and holds a row lock on it until the transaction ends.
	LockByID(ctx context.Context, db bun.IDB, id int64) (*Match, error)

	// ListByCompetition returns a competition's matches ordered by match number.
	ListByCompetition(ctx context.Context, db bun.IDB, competitionID int64) ([]*Match, error)

	// ListByCompetitionAndStatus returns a competition's matches in the given status.
	ListByCompetitionAndStatus(ctx context.Context, db bun.IDB, competitionID int64, status matchdomain.Status) ([]*Match, error)

	// CountByCompetition counts a competition's matches.
	CountByCompetition(ctx context.Context, db bun.IDB, competitionID int64) (int, error)

	// UpdateState persists status, started_at and scores_submitted.
	UpdateState(ctx context.Context, db bun.IDB, match *Match) error

	// Delete removes a match row.
	Delete(ctx context.Context, db bun.IDB, id int64) error

	// DeleteByCompetition removes every match of a competition.
	DeleteByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error

	// AddParticipants stores the participant set of a match.
	AddParticipants(ctx context.Context, db bun.IDB, matchID int64, refs []participant.Ref) error

	// ListParticipants returns the participants of one match.
	ListParticipants(ctx context.Context, db bun.IDB, matchID int64) ([]participant.Ref, error)

	// ListParticipantsForMatches returns participants keyed by match id.
	ListParticipantsForMatches(ctx context.Context, db bun.IDB, matchIDs []int64) (map[int64][]participant.Ref, error)

	// DeleteParticipants removes the participant set of one match.
	DeleteParticipants(ctx context.Context, db bun.IDB, matchID int64) error

	// DeleteParticipantsByCompetition removes the participant sets of every match in a competition.
	DeleteParticipantsByCompetition(ctx context.Context, db bun.IDB, competitionID int64) error
}
